package usecase

import (
	"context"
	"log/slog"

	"staffrecords/src/core/ports"
)

// SchemaService creates and drops the tables in foreign key order.
type SchemaService struct {
	tables []ports.Schema
	log    *slog.Logger
}

// NewSchemaService takes the tables parents first: departments, employees, reviews.
func NewSchemaService(log *slog.Logger, tables ...ports.Schema) *SchemaService {
	return &SchemaService{tables: tables, log: log}
}

// Create creates every table, parents first. It is idempotent.
func (s *SchemaService) Create(ctx context.Context) error {
	for _, t := range s.tables {
		if err := t.CreateTable(ctx); err != nil {
			return err
		}
	}
	s.log.Info("schema created", "tables", len(s.tables))
	return nil
}

// Drop drops every table, children first, flushing each identity map.
func (s *SchemaService) Drop(ctx context.Context) error {
	for i := len(s.tables) - 1; i >= 0; i-- {
		if err := s.tables[i].DropTable(ctx); err != nil {
			return err
		}
	}
	s.log.Info("schema dropped", "tables", len(s.tables))
	return nil
}
