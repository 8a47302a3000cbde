package repository

import (
	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.AlertReport, filename, outputDir string) (string, error)
	ExportToJSON(report entity.AlertReport, filename, outputDir string) (string, error)
	ExportToPDF(report entity.AlertReport, filename, outputDir string) (string, error)
}
