package sheet

// Reference lists offered when picking labels. Entries are suggestions only;
// the record accepts any text.

// DamageTypes are the damage types used for resistances and immunities
var DamageTypes = []string{
	"Ácido", "Concussivo", "Cortante", "Elétrico", "Frio", "Fogo",
	"Força", "Necrótico", "Perfurante", "Psíquico", "Radiante",
	"Trovejante", "Venenoso",
}

// SpecialMaterials qualify damage resistances
var SpecialMaterials = []string{"Adamantina", "Mágico", "Prata"}

// Conditions are the status conditions a character can carry
var Conditions = []string{
	"Agarrado", "Amaldiçoado", "Amedrontado", "Atordoado", "Caído", "Caindo",
	"Cego", "Desidratado", "Desnutrido", "Doente", "Encantado", "Envenenado",
	"Exausto", "Incapacitado", "Inconsciente", "Invisível", "Paralisado",
	"Petrificado", "Queimando", "Restrito", "Sangrando", "Silenciado",
	"Sufocado", "Surdo", "Surpreso", "Transformado",
}

// ArmorTypes groups armor names by category
var ArmorTypes = map[string][]string{
	"light":  {"Acolchoada", "Couro", "Couro Batido"},
	"medium": {"Peles", "Camisão", "Brunea", "Peitoral", "Meia-Armadura"},
	"heavy":  {"Anéis", "Cota", "Malha", "Talas", "Placas"},
	"shield": {"Escudo"},
}

// WeaponTypes groups weapon names by category
var WeaponTypes = map[string][]string{
	"simple": {
		"Clava", "Adaga", "Dardo", "Grande Clava", "Machadinha", "Azagaia",
		"Martelo Leve", "Maça", "Bordão", "Foice", "Lança", "Besta Leve",
		"Arco Curto", "Funda",
	},
	"martial": {
		"Machado Batalha", "Mangual", "Glaive", "Machado Grande", "Espada Grande",
		"Alabarda", "Lança Montada", "Espada Longa", "Marreta", "Maça Estrela",
		"Pique", "Rapieira", "Cimitarra", "Espada Curta", "Tridente", "Picareta",
		"Martelo Guerra", "Chicote", "Zarabatana", "Besta Mão", "Besta Pesada",
		"Arco Longo", "Rede",
	},
	"firearms": {"Pistola", "Mosquete"},
}

// Languages groups language names by rarity. Telepathy requires a range.
var Languages = map[string][]string{
	"standard": {"Comum", "Anão", "Élfico", "Gigante", "Gnomico", "Goblin", "Pequenino", "Orc", "Dracônico", "Libras"},
	"exotic": {
		"Celestial", "Abissal", "Infernal", "Primordial", "Silvestre", "Subcomum",
		"Profundo", "Druídico", "Gíria Ladino", "Aarakocra", "Gith", "Gnoll",
	},
	"special": {TelepathyLanguage},
}

// Senses are the special senses that carry a range
var Senses = []string{"Percepção às Cegas", "Visão no Escuro", "Sentido Sísmico", "Visão Verdadeira"}
