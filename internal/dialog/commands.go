package dialog

import "strings"

// CommandKind distinguishes the global commands that pre-empt all other
// routing logic.
type CommandKind string

const (
	CommandReset    CommandKind = "reset"
	CommandBack     CommandKind = "back"
	CommandSchedule CommandKind = "schedule"
	CommandEscalate CommandKind = "escalate"
	CommandScenario CommandKind = "scenario"
)

// Command is a matched global command.
type Command struct {
	Kind     CommandKind
	Scenario string // for CommandScenario
}

// resetTokens are matched as the whole normalized message, not substrings:
// "отмена записи" inside a sentence must not nuke the session.
var resetTokens = map[string]struct{}{
	"отмена":   {},
	"отменить": {},
	"сброс":    {},
	"стоп":     {},
	"cancel":   {},
}

var backTokens = map[string]struct{}{
	"назад": {},
	"back":  {},
}

// scenarioPhrases are the simulator's button prompts; they switch scenarios
// only on exact match so that free text stays with the classifier.
var scenarioPhrases = map[string]string{
	"аренда зала":                     ScenarioRent,
	"рассчитать стоимость аренды":     ScenarioRent,
	"детские группы":                  ScenarioKids,
	"уточнить возраст ребёнка":        ScenarioKids,
	"уточнить возраст ребенка":        ScenarioKids,
	"записаться на пробное занятие":   ScenarioTrial,
	"пробное занятие":                 ScenarioTrial,
	"вопрос о тренере":                ScenarioTrainer,
	"йога":                            ScenarioYoga,
	"записаться на йогу":              ScenarioYoga,
}

var schedulePhrases = map[string]struct{}{
	"расписание":            {},
	"посмотреть расписание": {},
}

var escalatePhrases = map[string]struct{}{
	"администратор":           {},
	"позвать администратора":  {},
	"передать администратору": {},
}

// MatchCommand recognizes scenario-switch, schedule, escalation, back and
// reset commands on the normalized message. Returns (zero, false) when the
// message is ordinary dialogue.
func MatchCommand(text string) (Command, bool) {
	norm := NormalizeText(text)
	if norm == "" {
		return Command{}, false
	}
	if _, ok := resetTokens[norm]; ok {
		return Command{Kind: CommandReset}, true
	}
	if _, ok := backTokens[norm]; ok {
		return Command{Kind: CommandBack}, true
	}
	if _, ok := schedulePhrases[norm]; ok {
		return Command{Kind: CommandSchedule}, true
	}
	if _, ok := escalatePhrases[norm]; ok {
		return Command{Kind: CommandEscalate}, true
	}
	if scenario, ok := scenarioPhrases[norm]; ok {
		return Command{Kind: CommandScenario, Scenario: scenario}, true
	}
	return Command{}, false
}

// NormalizeScenario maps a loosely spelled scenario label from the request
// onto the canonical one. Unknown labels pass through unchanged so new UI
// scenarios degrade to free-text classification instead of erroring.
func NormalizeScenario(scenario string) string {
	norm := NormalizeText(scenario)
	if norm == "" {
		return ""
	}
	switch {
	case containsAny(norm, "детск", "kids"):
		return ScenarioKids
	case containsAny(norm, "аренд", "rent"):
		return ScenarioRent
	case containsAny(norm, "тренер", "trainer"):
		return ScenarioTrainer
	case containsAny(norm, "йог", "yoga"):
		return ScenarioYoga
	case containsAny(norm, "запис", "проб", "trial", "booking"):
		return ScenarioTrial
	}
	return scenario
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
