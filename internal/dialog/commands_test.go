package dialog

import "testing"

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		text     string
		wantKind CommandKind
		wantOK   bool
	}{
		{"отмена", CommandReset, true},
		{"Сброс", CommandReset, true},
		{"СТОП", CommandReset, true},
		{"назад", CommandBack, true},
		{"расписание", CommandSchedule, true},
		{"Посмотреть расписание", CommandSchedule, true},
		{"администратор", CommandEscalate, true},
		{"Аренда зала", CommandScenario, true},
		{"Детские группы", CommandScenario, true},
		{"отмена записи на завтра", "", false}, // reset only as the whole message
		{"хочу снять зал", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		cmd, ok := MatchCommand(tt.text)
		if ok != tt.wantOK {
			t.Errorf("MatchCommand(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if ok && cmd.Kind != tt.wantKind {
			t.Errorf("MatchCommand(%q) kind = %s, want %s", tt.text, cmd.Kind, tt.wantKind)
		}
	}
}

func TestMatchCommandScenarioTargets(t *testing.T) {
	cmd, ok := MatchCommand("Аренда зала")
	if !ok || cmd.Scenario != ScenarioRent {
		t.Fatalf("expected rent scenario, got %+v ok=%v", cmd, ok)
	}
	cmd, ok = MatchCommand("записаться на пробное занятие")
	if !ok || cmd.Scenario != ScenarioTrial {
		t.Fatalf("expected trial scenario, got %+v ok=%v", cmd, ok)
	}
}

func TestNormalizeScenario(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Детские группы", ScenarioKids},
		{"детские группы 3-5 лет", ScenarioKids},
		{"Аренда зала", ScenarioRent},
		{"Вопрос о тренере", ScenarioTrainer},
		{"Йога", ScenarioYoga},
		{"Запись на занятие", ScenarioTrial},
		{"пробное", ScenarioTrial},
		{"", ""},
		{"Что-то новое", "Что-то новое"}, // unknown labels pass through
	}
	for _, tt := range tests {
		if got := NormalizeScenario(tt.in); got != tt.want {
			t.Errorf("NormalizeScenario(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
