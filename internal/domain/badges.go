package domain

// Badge keys. streak_master and knowledge_seeker exist in the catalog but no
// rule awards them yet.
const (
	BadgeFirstQuest       = "first_quest"
	BadgeMathWizard       = "math_wizard"
	BadgeVillageProtector = "village_protector"
	BadgeStreakMaster     = "streak_master"
	BadgeKnowledgeSeeker  = "knowledge_seeker"
)

// Badge describes an unlockable achievement.
type Badge struct {
	Name     string `json:"name"`
	NameOdia string `json:"name_odia"`
	Icon     string `json:"icon"`
}

// Badges is the static badge catalog keyed by badge id.
var Badges = map[string]Badge{
	BadgeFirstQuest:       {Name: "First Steps", NameOdia: "ପ୍ରଥମ ପଦକ୍ଷେପ", Icon: "🌟"},
	BadgeMathWizard:       {Name: "Math Wizard", NameOdia: "ଗଣିତ ଯାଦୁଗର", Icon: "🧙‍♂️"},
	BadgeVillageProtector: {Name: "Village Protector", NameOdia: "ଗାଁର ରକ୍ଷକ", Icon: "🛡️"},
	BadgeStreakMaster:     {Name: "7-Day Streak Master", NameOdia: "୭ ଦିନର ଧାରା ଗୁରୁ", Icon: "🔥"},
	BadgeKnowledgeSeeker:  {Name: "Knowledge Seeker", NameOdia: "ଜ୍ଞାନ ଅନ୍ୱେଷୀ", Icon: "📚"},
}
