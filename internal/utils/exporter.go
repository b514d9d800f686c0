package utils

import (
	"log"

	"loans-api/internal/models"
)

func ExportData(logs []models.AuditLog) error {
	for _, entry := range logs {
		//change with actual calls
		log.Println(entry.Timestamp, entry.Entity, entry.Action, entry.Data)
	}
	return nil
}
