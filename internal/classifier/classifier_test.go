package classifier

import (
	"regexp"
	"testing"

	"dropicat/internal/model"

	"github.com/stretchr/testify/assert"
)

func product(name string, tags ...string) *model.Product {
	p := &model.Product{Name: name}
	for _, t := range tags {
		p.Categories = append(p.Categories, model.ProductCategory{Name: t})
	}
	return p
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"punctuation and padding", "  Juguete, para Perro!!  ", "juguete para perro"},
		{"hyphen splits words", "gato-perro", "gato perro"},
		{"accents kept", "Peluquería   Ñandú", "peluquería ñandú"},
		{"digits and underscore kept", "Kit_2 x 3", "kit_2 x 3"},
		{"tabs and newlines", "a\tb\n\nc", "a b c"},
		{"empty", "", ""},
		{"only symbols", "¡¿#!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestCorpus(t *testing.T) {
	assert.Equal(t, "alimento para gatos accesorios", Corpus(product("Alimento para GATOS", "Accesorios")))
	assert.Equal(t, "silla", Corpus(product("Silla")))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		product  *model.Product
		expected string
	}{
		{"food with species", product("Alimento para gatos premium", "Accesorios"), model.CategoryMascotas},
		{"pet beats home keyword", product("Cama para perro hogar"), model.CategoryMascotas},
		{"pet beats kitchen keyword", product("Comida húmeda", "Mascotas"), model.CategoryMascotas},
		{"pet tag only", product("Cepillo deslanador", "Mascotas"), model.CategoryMascotas},
		{"operator word", product("Kit mascotero profesional"), model.CategoryMascotas},
		{"no keyword", product("Silla de comedor"), model.CategoryOtros},
		{"home", product("Lámpara de mesa LED"), model.CategoryHogar},
		{"cocina listed under home first", product("Set de cocina"), model.CategoryHogar},
		{"health", product("Vitamina C 1000mg"), model.CategorySalud},
		{"travel", product("Maleta de viaje 24 pulgadas"), model.CategoryViaje},
		{"generic accessory goes to travel", product("Accesorio para celular"), model.CategoryViaje},
		{"kitchen", product("Sartén antiadherente"), model.CategoryCocina},
		{"food without species", product("Alimento balanceado"), model.CategoryCocina},
		{"substring match", product("Casaca impermeable"), model.CategoryHogar},
		{"species glued to other letters", product("Estampado perroñ"), model.CategoryOtros},
		{"empty product", &model.Product{}, model.CategoryOtros},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.product))
		})
	}
}

func TestClassifyAlwaysReturnsKnownLabel(t *testing.T) {
	labels := []string{
		model.CategoryMascotas, model.CategoryHogar, model.CategorySalud,
		model.CategoryViaje, model.CategoryCocina, model.CategoryOtros,
	}
	for _, name := range []string{"", "x", "Gato", "olla", "hotel", "!!", "Set de 3 piezas", "bienestar"} {
		assert.Contains(t, labels, Classify(product(name)), name)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	p := product("Arnés reflectivo", "Perros", "Paseo")
	first := Classify(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(p))
	}
}

func TestPetPatternBoundaries(t *testing.T) {
	accessory := regexp.MustCompile(wordThen(accessories, species))

	assert.True(t, accessory.MatchString("arnés perro"))
	assert.True(t, accessory.MatchString("arnés rojo talla m perro"))
	assert.False(t, accessory.MatchString("perro arnés"))
	assert.False(t, accessory.MatchString("arnésx perro"))

	bare := regexp.MustCompile(word(species))
	assert.True(t, bare.MatchString("perros"))
	assert.True(t, bare.MatchString("para gato"))
	assert.False(t, bare.MatchString("superperro"))
	assert.False(t, bare.MatchString("gatoñ"))
}

func TestIsMiscategorized(t *testing.T) {
	assert.True(t, IsMiscategorized(product("Comedero superperro"), model.CategoryOtros))
	assert.False(t, IsMiscategorized(product("Comedero superperro"), model.CategoryMascotas))
	assert.False(t, IsMiscategorized(product("Silla", "Perros"), model.CategoryHogar))
	assert.False(t, IsMiscategorized(product("Lámpara"), model.CategoryHogar))
}

func TestFlag(t *testing.T) {
	p := product("Comedero superperro")
	label := Classify(p)
	assert.Equal(t, model.CategoryOtros, label)

	f := Flag(p, label)
	if assert.NotNil(t, f) {
		assert.Equal(t, "Comedero superperro", f.Name)
		assert.Equal(t, model.CategoryOtros, f.CurrentCategory)
		assert.Equal(t, model.CategoryMascotas, f.SuggestedCategory)
	}

	assert.Nil(t, Flag(product("Cama para perro"), model.CategoryMascotas))
}
