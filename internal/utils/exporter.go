package utils

import (
	"fmt"

	"book-query-explorer/internal/models"
)

func ExportRunLogs(logs []models.RunLog) error {
	for _, entry := range logs {
		fmt.Printf("%s  %-22s %s\n", entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Step, entry.Detail)
	}
	return nil
}
