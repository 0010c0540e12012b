package dialog

import (
	"regexp"
	"strings"
)

// turnInput is one user message after normalization, relative-date rewriting
// and fact extraction. Machines never see the raw request.
type turnInput struct {
	Raw   string
	Norm  string
	Facts Facts
}

// turnResult is what a state machine produced for one turn.
type turnResult struct {
	Reply        string
	QuickActions []string
	Rule         string
	LeadReady    bool
}

var (
	childRe    = regexp.MustCompile(`реб[её]н|сын|доч|детск|ребят`)
	adultRe    = regexp.MustCompile(`для себя|себе|взросл`)
	refusalRe  = regexp.MustCompile(`не дам|не хочу|не буду|не оставлю|без номера`)
	interestRe = map[string]*regexp.Regexp{
		"Танцы":      regexp.MustCompile(`танц|латин|хилс|heels|хорео|азбук`),
		"Йога":       regexp.MustCompile(`йог|yoga|хатха`),
		"Гимнастика": regexp.MustCompile(`гимнаст`),
		"Стретчинг":  regexp.MustCompile(`стретч|растяж`),
	}
	interestOrder = []string{"Танцы", "Йога", "Гимнастика", "Стретчинг"}
)

// directions maps studio direction names onto loose stems so a user can write
// "латину" or "хай хилс" and land on the exact group.
var directions = []struct {
	label string
	re    *regexp.Regexp
}{
	{"Latina Solo", regexp.MustCompile(`латин`)},
	{"High Heels", regexp.MustCompile(`хилс|heels|каблук`)},
	{"Dance Mix 7-11", regexp.MustCompile(`данс микс|dance mix`)},
	{"Choreo 12-17", regexp.MustCompile(`хорео`)},
	{"Азбука танца", regexp.MustCompile(`азбук`)},
}

func detectDirection(norm string) string {
	for _, d := range directions {
		if d.re.MatchString(norm) {
			return d.label
		}
	}
	return ""
}

func isQuickAction(norm, action string) bool {
	return norm == NormalizeText(action)
}

func mentionsChild(norm string) bool {
	return childRe.MatchString(norm)
}

func mentionsAdult(norm string) bool {
	if adultRe.MatchString(norm) {
		return true
	}
	// "мне" only as a standalone word, the stem is too short for substrings
	for _, w := range strings.Fields(norm) {
		if w == "мне" {
			return true
		}
	}
	return false
}

// detectInterest resolves a message to a direction or a broad interest
// category. A named direction wins over its category.
func detectInterest(norm string) string {
	if direction := detectDirection(norm); direction != "" {
		return direction
	}
	for _, label := range interestOrder {
		if interestRe[label].MatchString(norm) {
			return label
		}
	}
	return ""
}

// detectTimePref folds free text onto the quick-action vocabulary
// ("Будни, вечер" etc); a weekday name counts as a preference on its own.
func detectTimePref(norm string) string {
	var days string
	switch {
	case strings.Contains(norm, "будн"):
		days = "Будни"
	case strings.Contains(norm, "выходн"):
		days = "Выходные"
	}
	var part string
	switch {
	case strings.Contains(norm, "утр"):
		part = "утро"
	case strings.Contains(norm, "вечер"):
		part = "вечер"
	case strings.Contains(norm, "днем"), strings.Contains(norm, "днём"),
		strings.Contains(norm, "день"), strings.Contains(norm, "обед"):
		part = "день"
	}
	switch {
	case days != "" && part != "":
		return days + ", " + part
	case days != "":
		return days
	case part != "":
		return part
	}
	return DetectDay(norm)
}

// applyKidAge routes a freshly extracted child age into the right bracket.
// Ages 3..13 stay in the children's track, younger goes to the too-early
// branch, 14 and up leaves it.
func applyKidAge(sess *Session, age int) turnResult {
	sess.Slots.Age = age
	switch {
	case age < 3:
		sess.Stage = StageKidAgeTooEarly
		if sess.Slots.TooEarlySeen {
			// the rationale is shown once; afterwards only the short menu
			return turnResult{Reply: replyKidTooEarlyMenu, QuickActions: tooEarlyActions, Rule: "kids.age_too_early_repeat"}
		}
		sess.Slots.TooEarlySeen = true
		return turnResult{Reply: replyKidTooEarly, QuickActions: tooEarlyActions, Rule: "kids.age_too_early"}
	case age >= 14:
		sess.Stage = StageTeenOrAdult
		return turnResult{Reply: replyTeenOrAdult, QuickActions: teenOrAdultActions, Rule: "kids.age_teen_or_adult"}
	}
	sess.Slots.ForWhom = "child"
	sess.Stage = StageAskInterest
	return turnResult{Reply: replyAskInterest, Rule: "kids.age_ok"}
}

// handleInterestStage and the stages below are shared by the children's,
// trial and yoga machines; the flows converge once the audience is known.
func handleInterestStage(sess *Session, in turnInput) turnResult {
	if interest := detectInterest(in.Norm); interest != "" {
		sess.Slots.Interest = interest
		sess.Stage = StageAskTime
		return turnResult{Reply: replyAskTime, QuickActions: timeSlotActions, Rule: "common.interest_captured"}
	}
	return turnResult{Reply: replyInterestRepeat, Rule: "common.interest_repeat"}
}

func handleTimeStage(sess *Session, in turnInput) turnResult {
	for _, slot := range timeSlotActions {
		if isQuickAction(in.Norm, slot) {
			sess.Slots.TimePref = slot
			sess.Stage = StageAskPhone
			return turnResult{Reply: replyAskPhone, Rule: "common.time_captured"}
		}
	}
	if pref := detectTimePref(in.Norm); pref != "" {
		sess.Slots.TimePref = pref
		sess.Stage = StageAskPhone
		return turnResult{Reply: replyAskPhone, Rule: "common.time_captured"}
	}
	return turnResult{Reply: replyTimeRepeat, QuickActions: timeSlotActions, Rule: "common.time_repeat"}
}

func handlePhoneStage(sess *Session, in turnInput) turnResult {
	if in.Facts.Phone != "" {
		sess.Slots.SetPhone(in.Facts.Phone)
		sess.Stage = StageReady
		return turnResult{Reply: replyReady, Rule: "common.phone_captured", LeadReady: true}
	}
	if isQuickAction(in.Norm, ActionCallAdmin) {
		sess.Stage = StageReady
		return turnResult{Reply: replyAdminHandoff, Rule: "common.phone_admin_handoff", LeadReady: true}
	}
	sess.Slots.PhoneAttempts++
	if refusalRe.MatchString(in.Norm) || sess.Slots.PhoneAttempts >= 2 {
		return turnResult{Reply: replyPhoneEscalate, QuickActions: phoneOutActions, Rule: "common.phone_escalate"}
	}
	return turnResult{Reply: replyPhoneRetry, Rule: "common.phone_retry"}
}

func handleTooEarlyStage(sess *Session, in turnInput) turnResult {
	if in.Facts.Age > 0 {
		return applyKidAge(sess, in.Facts.Age)
	}
	if isQuickAction(in.Norm, ActionOtherAge) {
		sess.Stage = StageAskKidAge
		return turnResult{Reply: replyAskKidAge, Rule: "kids.too_early_other_age"}
	}
	if isQuickAction(in.Norm, ActionConsultation) || isQuickAction(in.Norm, ActionIndividual) {
		sess.Slots.Interest = in.Raw
		sess.Stage = StageAskPhone
		return turnResult{Reply: replyAskPhone, Rule: "kids.too_early_handoff"}
	}
	return turnResult{Reply: replyKidTooEarlyMenu, QuickActions: tooEarlyActions, Rule: "kids.too_early_menu"}
}

func handleTeenOrAdultStage(sess *Session, in turnInput) turnResult {
	if in.Facts.Age > 0 {
		return applyKidAge(sess, in.Facts.Age)
	}
	switch {
	case isQuickAction(in.Norm, ActionForTeen) || strings.Contains(in.Norm, "подрост"):
		sess.Slots.ForWhom = "teen"
		sess.Stage = StageAskPhone
		return turnResult{Reply: replyTeenRedirect, Rule: "kids.teen_redirect"}
	case isQuickAction(in.Norm, ActionForAdult) || mentionsAdult(in.Norm):
		sess.Slots.ForWhom = "adult"
		sess.Stage = StageAskInterest
		return turnResult{Reply: replyAskInterest, Rule: "kids.adult_redirect"}
	}
	return turnResult{Reply: replyTeenOrAdult, QuickActions: teenOrAdultActions, Rule: "kids.teen_or_adult_repeat"}
}
