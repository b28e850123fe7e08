// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryArgs(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    EntryRequest
		wantErr bool
	}{
		{"all", "gold_100 123456 Economy", EntryRequest{Key: "gold_100", UniverseID: 123456, Datastore: "Economy"}, false},
		{"extra spaces", "  gold_100   123456\tEconomy ", EntryRequest{Key: "gold_100", UniverseID: 123456, Datastore: "Economy"}, false},
		{"non-numeric universe", "gold_100 abc Economy", EntryRequest{Key: "gold_100", Datastore: "Economy"}, false},
		{"missing datastore", "gold_100 123456", EntryRequest{Key: "gold_100", UniverseID: 123456}, false},
		{"empty", "", EntryRequest{}, false},
		{"too many", "a 1 b c", EntryRequest{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntryArgs(tt.text)
			if tt.wantErr {
				var ie *InputError
				require.ErrorAs(t, err, &ie)
				assert.Contains(t, ie.Message, EntryUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecordArgs(t *testing.T) {
	got, err := ParseRecordArgs("1234 5")
	require.NoError(t, err)
	assert.Equal(t, RecordRequest{UserID: 1234, UniverseID: 5}, got)

	got, err = ParseRecordArgs("1234 5 Inventory")
	require.NoError(t, err)
	assert.Equal(t, "Inventory", got.Datastore)

	got, err = ParseRecordArgs("-1 5")
	require.NoError(t, err)
	assert.Zero(t, got.UserID)
	assert.NotNil(t, got.Validate())

	_, err = ParseRecordArgs("1 2 3 4")
	assert.Error(t, err)
}

func TestRecordRequest_normalise(t *testing.T) {
	r := RecordRequest{UserID: 1, UniverseID: 2, Datastore: "  "}
	r.normalise()
	assert.Equal(t, DefRecordDatastore, r.Datastore)
}

func TestParseID(t *testing.T) {
	for s, want := range map[string]int64{"1": 1, "123456": 123456, "0": 0, "-5": 0, "12abc": 0, "": 0, " 7": 0} {
		assert.Equal(t, want, ParseID(s), s)
	}
}

func TestEntryRequest_normalise(t *testing.T) {
	r := EntryRequest{Key: " padded key ", UniverseID: 1, Datastore: " Economy "}
	r.normalise()
	assert.Equal(t, " padded key ", r.Key)
	assert.Equal(t, "Economy", r.Datastore)
	assert.Nil(t, r.Validate())

	r = EntryRequest{Key: "   ", UniverseID: 1, Datastore: "Economy"}
	r.normalise()
	assert.Equal(t, errNoKey, r.Validate())
}
