// Package vocabulary maps the fixed, human-readable catalog of item names
// that the driver's menu accepts onto the integer addresses the coherence
// engine understands. The catalog and its ordering are part of the
// driver's external contract: address i always names catalog[i].
package vocabulary

import "strings"

// names is the fixed 128-entry catalog, index i naming address i.
var names = [128]string{
	"rosa", "tulipa", "orquídea", "girassol",
	"lírio", "dália", "azaleia", "cravo",
	"violeta", "hortênsia", "camélia", "jasmim",
	"begônia", "amarílis", "gérbera", "peônia",
	"petúnia", "magnólia", "copo-de-leite", "margarida",
	"narciso", "lótus", "gladíolo", "antúrio",
	"hibisco", "flor-de-lis", "ipê", "cerejeira",
	"verbena", "alecrim", "lavanda", "manacá",
	"cravina", "camomila", "girassol-do-campo", "bromélia",
	"ciclame", "calêndula", "estrelícia", "flor-de-maio",
	"freesia", "azucena", "anis", "trevo",
	"salvia", "buganvília", "edelvaisse", "cactos",
	"flor-de-maracujá", "gengibre", "gloxínia", "ipê-amarelo",
	"jasmim-manga", "tagetes", "magnólia-branca", "papoula",
	"maranta", "murta", "névoa", "orquídea-negra",
	"primavera", "rabo-de-galo", "sálvia-branca", "tomilho",
	"urze", "verbena-roxa", "viuvinha", "ylang-ylang",
	"cravo-vermelho", "jasmim-estrela", "lírio-do-vale", "madressilva",
	"mimosa", "onze-horas", "orquídea-bambu", "orquídea-chocolate",
	"orquídea-fantasma", "orquídea-vanila", "paixão-flor", "papoula-californiana",
	"pata-de-vaca", "primavera-roxa", "raíz-de-ouro", "rosa-do-deserto",
	"rosa-mística", "silene", "stevia-flor", "tajete",
	"trapoeraba", "trevo-roxo", "baunilha", "trombeta-dourada",
	"valeriana", "verônica", "viburno", "viola-tricolor",
	"xerântemo", "zínia", "angelônia", "astromélia",
	"belladona", "cana-da-índia", "cinerária", "cosmos",
	"dianthus", "dulcamara", "echinacea", "esponjinha",
	"flor-borboleta", "flor-de-cera", "flor-de-coral", "flor-de-íris",
	"gazânia", "gerânio", "helicônia", "jasmim-do-cabo",
	"lantana", "malva", "melissa", "mirabilis",
	"nêspera-florida", "no-me-esqueças", "orquídea-tigre", "pervinca",
	"ranúnculo", "sapatinho-de-judia", "trébol", "uvaia-florida",
}

// byName is built once from names for O(1) lookups in Address.
var byName = func() map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}

	return m
}()

// Address looks up name (case-insensitively) and returns its address.
// The second return value is false if name is not in the catalog.
func Address(name string) (int, bool) {
	addr, ok := byName[strings.ToLower(strings.TrimSpace(name))]

	return addr, ok
}

// Name returns the catalog entry for address. The second return value is
// false if address is out of range.
func Name(address int) (string, bool) {
	if address < 0 || address >= len(names) {
		return "", false
	}

	return names[address], true
}

// All returns the catalog in address order, for menu display.
func All() []string {
	out := make([]string, len(names))
	copy(out, names[:])

	return out
}
