package cli

import (
	"fmt"

	"github.com/diillson/aws-ri-expiration-alert/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
   ____  ___      _    _           _
  |  _ \|_ _|    / \  | | ___ _ __| |_
  | |_) || |    / _ \ | |/ _ \ '__| __|
  |  _ < | |   / ___ \| |  __/ |  | |_
  |_| \_\___| /_/   \_\_|\___|_|   \__|
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("Reserved Instance Expiration Alert (v%s)", version.FormatVersion())))
}
