package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rafabene/docdesk/internal/domain/entities"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"vazio", "", ""},
		{"curto", "short", "short"},
		{"exatamente o limite", strings.Repeat("a", 100), strings.Repeat("a", 100)},
		{"um acima do limite", strings.Repeat("a", 101), strings.Repeat("a", 100) + "..."},
		{"multibyte conta caracteres", strings.Repeat("é", 150), strings.Repeat("é", 100) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Preview(tt.in, PreviewLength))
		})
	}
}

func TestToDocumentRow(t *testing.T) {
	doc, err := entities.NewDocument("Alice Resume", strings.Repeat("R", 9000), strings.Repeat("J", 9000), "short")
	require.NoError(t, err)
	doc.ID = 7
	doc.UpdatedAt = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

	row := ToDocumentRow(doc)

	require.Equal(t, int64(7), row.ID)
	require.Equal(t, "Alice Resume", row.Name)
	require.Equal(t, strings.Repeat("R", 100)+"...", row.ResumePreview)
	require.Equal(t, strings.Repeat("J", 100)+"...", row.JDPreview)
	require.Equal(t, "short", row.Summary)
	require.Equal(t, "2026-10-14 09:30", row.UpdatedAt)
}

func TestFormatTimestamp_Zero(t *testing.T) {
	require.Equal(t, "", FormatTimestamp(time.Time{}))
}
