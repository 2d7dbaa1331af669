package infractions

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PancyStudios/PancyModGo/pkg/models"
)

func TestParseTypeList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []models.InfractionType
		wantErr bool
	}{
		{
			name: "single type",
			raw:  "warning",
			want: []models.InfractionType{models.InfractionWarning},
		},
		{
			name: "comma separated",
			raw:  "kick,ban",
			want: []models.InfractionType{models.InfractionKick, models.InfractionBan},
		},
		{
			name: "space separated",
			raw:  "note warning",
			want: []models.InfractionType{models.InfractionNote, models.InfractionWarning},
		},
		{
			name: "mixed separators and extra spaces",
			raw:  "note, warning  kick",
			want: []models.InfractionType{models.InfractionNote, models.InfractionWarning, models.InfractionKick},
		},
		{
			name: "duplicates collapse",
			raw:  "ban, ban, kick",
			want: []models.InfractionType{models.InfractionBan, models.InfractionKick},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name:    "unknown type",
			raw:     "warning, bogus",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTypeList(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseTypeList(%q) expected an error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTypeList(%q) returned error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTypeList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTypeNames(t *testing.T) {
	names := typeNames()
	for _, typ := range models.AllInfractionTypes {
		if !strings.Contains(names, string(typ)) {
			t.Errorf("typeNames() = %q, missing %q", names, typ)
		}
	}
}
