// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCreatedAt(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name      string
		text      string
		loc       *time.Location
		want      time.Time
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "exporter format",
			text:      "## Title\nbody\n*Created at: 14/09/2023 17:28*\n",
			want:      time.Date(2023, 9, 14, 17, 28, 0, 0, time.UTC),
			wantFound: true,
		},
		{
			name:      "indented line without closing star",
			text:      "body\n   *Created at: 01/02/2020 08:05\n",
			want:      time.Date(2020, 2, 1, 8, 5, 0, 0, time.UTC),
			wantFound: true,
		},
		{
			name:      "last line wins",
			text:      "*Created at: 01/01/2019 00:00*\nquoted above\n*Created at: 02/01/2019 00:00*\n",
			want:      time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
			wantFound: true,
		},
		{
			name:      "RFC 3339 keeps its offset",
			text:      "*Created at: 2024-02-29T12:00:00+01:00*\n",
			loc:       tokyo,
			want:      time.Date(2024, 2, 29, 11, 0, 0, 0, time.UTC),
			wantFound: true,
		},
		{
			name:      "local date read in zone",
			text:      "*Created at: 14/09/2023 17:28*",
			loc:       tokyo,
			want:      time.Date(2023, 9, 14, 8, 28, 0, 0, time.UTC),
			wantFound: true,
		},
		{
			name: "no line",
			text: "body\nCreated at: 14/09/2023 17:28\n",
		},
		{
			name:      "unparseable date",
			text:      "*Created at: 2023/09/14*\n",
			wantFound: true,
			wantErr:   true,
		},
		{
			name:      "month first is rejected",
			text:      "*Created at: 09/14/2023 17:28*\n",
			wantFound: true,
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := NoteCreatedAt(tt.text, tt.loc)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
