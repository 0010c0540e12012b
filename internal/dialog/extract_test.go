package dialog

import (
	"testing"
	"time"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Привет!  ", "привет"},
		{"Хочу   Записаться...", "хочу записаться"},
		{"АРЕНДА ЗАЛА?!", "аренда зала"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8 900 123-45-67", "+79001234567"},
		{"+7 (900) 123 45 67", "+79001234567"},
		{"79001234567", "+79001234567"},
		{"9001234567", "+79001234567"},
		{"мой номер 89001234567, жду звонка", "+79001234567"},
		{"12345", ""},
		{"телефона не дам", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractPhone(tt.in); got != tt.want {
			t.Errorf("ExtractPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractAge(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"6", 6},
		{" 12 ", 12},
		{"ребёнку 8 лет", 8},
		{"ребенку 5 годиков", 5},
		{"мне 30 лет", 30},
		{"дочке 4 года", 4},
		{"100", 0},
		{"0", 0},
		{"не скажу", 0},
		{"в 16:00", 0},
	}
	for _, tt := range tests {
		if got := ExtractAge(tt.in); got != tt.want {
			t.Errorf("ExtractAge(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRewriteRelativeDates(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want string
	}{
		{"завтра в 18:00", "02.09 в 18:00"},
		{"Послезавтра", "03.09"},
		{"сегодня вечером", "01.09 вечером"},
		{"в пятницу", "в пятницу"},
	}
	for _, tt := range tests {
		if got := RewriteRelativeDates(tt.in, now); got != tt.want {
			t.Errorf("RewriteRelativeDates(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectDay(t *testing.T) {
	if got := DetectDay("удобно в субботу утром"); got != "Суббота" {
		t.Fatalf("expected Суббота, got %q", got)
	}
	if got := DetectDay("в любой день"); got != "" {
		t.Fatalf("expected no day, got %q", got)
	}
}

func TestExtractDateTime(t *testing.T) {
	tests := []struct {
		in        string
		wantDate  string
		wantClock string
	}{
		{"05.12 18:00", "05.12", "18:00"},
		{"05/12 в 18.00", "05.12", "18:00"},
		{"приходите к 18:00", "", "18:00"},
		{"на 13.45", "", "13:45"}, // month 45 is impossible, so it reads as a time
		{"числа пока не знаю", "", ""},
		{"9:30 05.12", "05.12", "09:30"},
	}
	for _, tt := range tests {
		date, clock := ExtractDateTime(tt.in)
		if date != tt.wantDate || clock != tt.wantClock {
			t.Errorf("ExtractDateTime(%q) = (%q, %q), want (%q, %q)", tt.in, date, clock, tt.wantDate, tt.wantClock)
		}
	}
}
