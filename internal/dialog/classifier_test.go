package dialog

import "testing"

func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"Хочу арендовать зал", IntentRent},
		{"можно снять зал на вечер?", IntentRent},
		{"запишите меня на йогу", IntentYoga}, // yoga outranks booking
		{"аренда зала под йогу", IntentRent},  // rent outranks yoga
		{"хочу записаться", IntentTrial},
		{"есть пробное занятие?", IntentTrial},
		{"интересует абонемент", IntentTrial},
		{"чем занимаетесь? танцы есть?", IntentOfferDance},
		{"чем занимаетесь", IntentOffer},
		{"какие направления у вас есть", IntentOffer},
		{"латина соло", IntentDance},
		{"привет", IntentGeneral},
		{"", IntentGeneral},
	}
	for _, tt := range tests {
		if got := Classify(tt.text).Intent; got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Classify("хочу арендовать зал").Intent; got != IntentRent {
			t.Fatalf("iteration %d: got %s", i, got)
		}
	}
}

func TestClassifyCarriesFacts(t *testing.T) {
	cls := Classify("запишите ребёнка, ему 8 лет")
	if cls.Intent != IntentTrial {
		t.Fatalf("expected trial intent, got %s", cls.Intent)
	}
	if cls.Facts.Age != 8 {
		t.Fatalf("expected age 8, got %d", cls.Facts.Age)
	}

	cls = Classify("запишите меня, телефон 89001234567")
	if cls.Facts.Phone != "+79001234567" {
		t.Fatalf("expected normalized phone, got %q", cls.Facts.Phone)
	}
}

func TestDetectInterestResolvesDirections(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"хочу на латину", "Latina Solo"},
		{"хай хилс интересует", "High Heels"},
		{"запишите на хорео", "Choreo 12-17"},
		{"азбука танца для малышей", "Азбука танца"},
		{"просто танцы", "Танцы"},
		{"растяжка", "Стретчинг"},
		{"шахматы", ""},
	}
	for _, tt := range tests {
		if got := detectInterest(NormalizeText(tt.text)); got != tt.want {
			t.Errorf("detectInterest(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestIsYogaMention(t *testing.T) {
	for _, text := range []string{"йога", "хочу на йогу", "есть хатха?", "yoga class"} {
		if !IsYogaMention(text) {
			t.Errorf("expected yoga mention in %q", text)
		}
	}
	if IsYogaMention("хочу танцевать") {
		t.Errorf("did not expect yoga mention")
	}
}
