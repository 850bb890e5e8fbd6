package classifier

import (
	"regexp"
	"strings"

	"dropicat/internal/model"
)

// Rule maps a category to the literal substrings that select it.
type Rule struct {
	Category string
	Keywords []string
}

// keywordRules is walked in order after the pet patterns; first hit wins.
// Overlapping generic words (cocina, alimento, accesorio, comida) resolve by
// this order.
var keywordRules = []Rule{
	{model.CategoryHogar, []string{
		"hogar", "casa", "decoración", "mueble", "lámpara", "cortina", "alfombra",
		"jardín", "aire acondicionado", "ventilador", "limpieza", "organizador",
		"herramienta", "electricidad", "iluminación", "baño", "cocina",
	}},
	{model.CategorySalud, []string{
		"salud", "medicina", "vitamina", "suplemento", "ejercicio", "deporte",
		"bienestar", "fitness", "nutrición", "cuidado", "belleza", "cosmético",
		"higiene", "personal",
	}},
	{model.CategoryViaje, []string{
		"viaje", "maleta", "equipaje", "mochila", "bolso", "accesorio", "turismo",
		"hotel", "camping", "aventura", "outdoor", "aire libre",
	}},
	{model.CategoryCocina, []string{
		"cocina", "utensilio", "electrodoméstico", "vajilla", "cubierto", "olla",
		"sartén", "batidora", "licuadora", "horno", "microondas", "refrigerador",
		"alimento", "bebida", "comida",
	}},
}

var (
	species     = []string{"perro", "perros", "gato", "gatos", "mascota", "mascotas"}
	accessories = []string{"collar", "correa", "arnés", "jaula", "pecera", "acuario"}
	foods       = []string{"alimento", "comida"}
	operators   = []string{"mascoteria", "mascotero", "mascotera", "mascoteros", "mascoteras"}
)

// flagWords are looked up as substrings of the bare product name.
var flagWords = species

// boundary stands in for \b. Go's \b only knows ASCII, and accented letters
// must count as word characters here.
const boundary = `[^\p{L}\p{N}_]`

// word matches any of words as a whole word.
func word(words []string) string {
	return `(?:^|` + boundary + `)(?:` + strings.Join(words, "|") + `)(?:` + boundary + `|$)`
}

// wordThen matches a whole word from first followed, anywhere later, by a
// whole word from second.
func wordThen(first, second []string) string {
	return `(?:^|` + boundary + `)(?:` + strings.Join(first, "|") + `)` + boundary +
		`(?:.*` + boundary + `)?(?:` + strings.Join(second, "|") + `)(?:` + boundary + `|$)`
}

// petPatterns are checked before keywordRules. Any hit means MASCOTAS.
var petPatterns = []*regexp.Regexp{
	regexp.MustCompile(word(species)),
	regexp.MustCompile(wordThen(accessories, species)),
	regexp.MustCompile(wordThen(foods, species)),
	regexp.MustCompile(word(operators)),
}
