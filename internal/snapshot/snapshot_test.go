package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "dropi_products.json")
	body := []byte(`{"isSuccess":true,"objects":[{"id":10,"name":"Arnés para perro","categories":[{"name":"Mascotas"}]}]}`)

	require.NoError(t, Save(path, body))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "\n  \"objects\": [")
	assert.Contains(t, string(written), "Arnés para perro")

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Products, 1)
	assert.Equal(t, int64(10), s.Products[0].ID)
	assert.Equal(t, "Mascotas", s.Products[0].Categories[0].Name)
	assert.Empty(t, s.Skipped)
}

func TestSaveInvalidBodyKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"objects":[]}`), 0o644))

	assert.Error(t, Save(path, []byte(`<html>`)))

	kept, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"objects":[]}`, string(kept))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"objects": [`))
	assert.Error(t, err)
}

func TestDecodeSkipsBadRecords(t *testing.T) {
	s, err := Decode([]byte(`{"objects": [
		{"id": 1, "name": "a"},
		{"id": "x", "name": "b"},
		"not a product",
		{"id": 3, "name": "c", "variations": [{"id": 30, "stock": 3.0}]},
		{"id": 4, "name": "d", "sale_price": "", "suggested_price": "12500.50"},
		{"id": 5, "name": "e", "warehouse_product": [{"warehouse_id": 1, "stock": "5"}]},
		{"id": 6, "name": "f", "user": []},
		42
	]}`))
	require.NoError(t, err)

	require.Len(t, s.Products, 6)
	assert.Equal(t, "b", s.Products[1].Name)
	assert.Zero(t, s.Products[1].ID)
	require.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0].Error(), "objects[1]")

	require.Len(t, s.Skipped, 2)
	assert.Contains(t, s.Skipped[0].Error(), "objects[2]")
	assert.Contains(t, s.Skipped[1].Error(), "objects[7]")

	tests := []struct {
		name  string
		index int
		check func(t *testing.T, idx int)
	}{
		{"fractional stock", 2, func(t *testing.T, idx int) {
			assert.EqualValues(t, 3, s.Products[idx].Variations[0].Stock)
		}},
		{"empty price string", 3, func(t *testing.T, idx int) {
			assert.True(t, s.Products[idx].SalePrice.IsZero())
			assert.Equal(t, "12500.5", s.Products[idx].SuggestedPrice.String())
		}},
		{"numeric string stock", 4, func(t *testing.T, idx int) {
			assert.EqualValues(t, 5, s.Products[idx].WarehouseProduct[0].Stock)
		}},
		{"user as array", 5, func(t *testing.T, idx int) {
			assert.Equal(t, "N/A", s.Products[idx].StoreName())
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.index)
		})
	}
}

func TestSaveWritesPlainUTF8InKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	body := []byte(`{"objects":[{"name":"Cama para perro peque\u00f1o","urlS3":"https:\/\/cdn.dropi.co\/a.png","sale_price":45000.50,"html":"\u003cb\u003e"}],"isSuccess":true}`)

	require.NoError(t, Save(path, body))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(written)
	assert.Contains(t, out, `"name": "Cama para perro pequeño"`)
	assert.Contains(t, out, `"urlS3": "https://cdn.dropi.co/a.png"`)
	assert.Contains(t, out, `"sale_price": 45000.50`)
	assert.Contains(t, out, `"html": "<b>"`)
	assert.NotContains(t, out, `\u`)
	assert.Less(t, strings.Index(out, `"objects"`), strings.Index(out, `"isSuccess"`))
	assert.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"urlS3"`))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Products, 1)
	assert.Equal(t, "Cama para perro pequeño", s.Products[0].Name)
}

func TestReencode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty containers", `{"a":{},"b":[]}`, `{"a":{},"b":[]}`},
		{"nested arrays", `[1,[2,3],{"k":[null,true,false]}]`, `[1,[2,3],{"k":[null,true,false]}]`},
		{"whitespace dropped", "{ \"a\" : 1 ,\n \"b\" : \"x\" }", `{"a":1,"b":"x"}`},
		{"quotes stay escaped", `{"q":"say \"hi\""}`, `{"q":"say \"hi\""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reencode([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}

	_, err := reencode([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)
}

func TestDecodeWithoutObjects(t *testing.T) {
	s, err := Decode([]byte(`{"isSuccess": false}`))
	require.NoError(t, err)
	assert.Empty(t, s.Products)
}
