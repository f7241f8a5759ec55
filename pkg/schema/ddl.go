package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Protein DDL methods
func (p Protein) TableDDL() string {
	return generateDDL(p, p.TableName())
}

func (p Protein) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_protein_organism_canonical " +
			"ON protein(organism_canonical);",
	}
}

func (p Protein) TableName() string {
	return "protein"
}

// Structure DDL methods
func (s Structure) TableDDL() string {
	return generateDDL(s, s.TableName())
}

func (s Structure) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_protein_structure_protein_id " +
			"ON protein_structure(protein_id);",
	}
}

func (s Structure) TableName() string {
	return "protein_structure"
}
