package purge

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "space separated",
			raw:  "852683369899622430 153909458666192896",
			want: []string{"852683369899622430", "153909458666192896"},
		},
		{
			name: "comma separated",
			raw:  "852683369899622430, 153909458666192896,252908391075708928",
			want: []string{"852683369899622430", "153909458666192896", "252908391075708928"},
		},
		{
			name: "mentions and noise",
			raw:  "<@852683369899622430> y también <@!153909458666192896>",
			want: []string{"852683369899622430", "153909458666192896"},
		},
		{
			name: "no ids",
			raw:  "esto no tiene ids, solo 1234",
			want: nil,
		},
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseIDList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseIDList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatIDList(t *testing.T) {
	got := formatIDList([]string{"852683369899622430", "153909458666192896"})
	want := "`852683369899622430`, `153909458666192896`"
	if got != want {
		t.Errorf("formatIDList() = %q, want %q", got, want)
	}
}

func TestFormatIDListTruncates(t *testing.T) {
	ids := make([]string, maxEchoedIDs+5)
	for i := range ids {
		ids[i] = "85268336989962" + fmt.Sprintf("%04d", i)
	}

	got := formatIDList(ids)
	if !strings.HasSuffix(got, "y 5 más") {
		t.Errorf("formatIDList() = %q, want truncation suffix \"y 5 más\"", got)
	}
	if shown := strings.Count(got, "`") / 2; shown != maxEchoedIDs {
		t.Errorf("formatIDList() echoed %d ids, want %d", shown, maxEchoedIDs)
	}
}

func TestFormatUserList(t *testing.T) {
	users := []*discordgo.User{
		{ID: "852683369899622430", Username: "pancy"},
		{ID: "153909458666192896", Username: "mod"},
	}

	got := formatUserList(users)
	want := "**pancy** (`852683369899622430`), **mod** (`153909458666192896`)"
	if got != want {
		t.Errorf("formatUserList() = %q, want %q", got, want)
	}
}
