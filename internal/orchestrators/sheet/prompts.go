package sheet

import "fmt"

// Confirmation prompts and notices shown to the user
const (
	promptShortRest      = "Realizar Descanso Curto?\nIsso recuperará habilidades de 'Recarga Curta'."
	promptLongRest       = "Realizar Descanso Longo?\nRecupera Vida, Magias e Habilidades."
	promptRestoreSlots   = "Recuperar todos os slots de magia?"
	promptReset          = "TEM CERTEZA? Isso apagará todos os dados da ficha atual e criará uma ficha em branco nível 1."
	promptResetDefaults  = "TEM CERTEZA? Isso apagará a ficha salva e voltará à ficha padrão."
	promptDeleteFeature  = "Excluir esta habilidade?"
	promptDeleteItem     = "Tem certeza que deseja excluir este item permanentemente?"
	promptDeleteSpell    = "Apagar magia?"
	promptDeleteCreature = "Remover esta criatura?"
	promptDeleteNote     = "Apagar este registro de sessão?"

	// WarningNoSlot is reported when a spell is cast without a free slot
	WarningNoSlot = "Sem slots disponíveis para este nível!"
	// WarningNoHitDice is reported when a hit die is rolled with none left
	WarningNoHitDice = "Sem dados de vida disponíveis!"
)

func promptConsume(name string) string {
	return fmt.Sprintf("Deseja consumir 1 unidade de %q?", name)
}

func promptCast(name string, level int) string {
	return fmt.Sprintf("Conjurar %q gastando 1 slot de nível %d?", name, level)
}

func promptImport(name string) string {
	return fmt.Sprintf("Substituir a ficha atual pela de %q?", name)
}
