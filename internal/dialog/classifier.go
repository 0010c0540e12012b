package dialog

import "regexp"

// The classifier evaluates topic keyword groups in a fixed priority order:
// rental > yoga > booking > "what do you offer"+dance > "what do you offer" >
// dance-only > general. Stem-based substring regexes are used throughout —
// \b word boundaries are unreliable on Cyrillic text.
var (
	rentRe    = regexp.MustCompile(`аренд|снять зал|прокат зала`)
	trainerRe = regexp.MustCompile(`тренер|преподавател|инструктор`)
	yogaRe    = regexp.MustCompile(`йог|yoga|хатха`)
	bookingRe = regexp.MustCompile(`запис|пробн|абонемент`)
	offerRe   = regexp.MustCompile(`чем занимаетесь|что у вас есть|какие направлени|что вы предлагаете|что предлагаете`)
	danceRe   = regexp.MustCompile(`танц|танец|латин|хилс|heels|хорео|азбук`)
)

type intentRule struct {
	match  func(string) bool
	intent Intent
}

// intentRules is evaluated top to bottom; the first hit wins. Kept as an
// explicit table so precedence is visible and testable in one place.
var intentRules = []intentRule{
	{func(t string) bool { return rentRe.MatchString(t) }, IntentRent},
	{func(t string) bool { return yogaRe.MatchString(t) }, IntentYoga},
	{func(t string) bool { return bookingRe.MatchString(t) }, IntentTrial},
	{func(t string) bool { return offerRe.MatchString(t) && danceRe.MatchString(t) }, IntentOfferDance},
	{func(t string) bool { return offerRe.MatchString(t) }, IntentOffer},
	{func(t string) bool { return danceRe.MatchString(t) }, IntentDance},
}

// Classification is the ephemeral result of one message: the coarse intent
// plus any facts extracted alongside it.
type Classification struct {
	Intent Intent
	Facts  Facts
}

// Classify maps normalized text to a coarse intent label. Pure and
// idempotent: the same input always yields the same output.
func Classify(text string) Classification {
	norm := NormalizeText(text)
	result := Classification{Intent: IntentGeneral, Facts: ExtractFacts(text)}
	for _, rule := range intentRules {
		if rule.match(norm) {
			result.Intent = rule.intent
			break
		}
	}
	return result
}

// IsYogaMention reports whether the text hits the dedicated yoga regex that
// makes the yoga intent sticky for the rest of the conversation.
func IsYogaMention(text string) bool {
	return yogaRe.MatchString(NormalizeText(text))
}

// IsTrainerMention reports whether the text asks about a trainer. Trainer
// questions are answered single-shot and outrank yoga stickiness, so
// "тренер йога" gets the yoga trainer's info instead of the booking flow.
func IsTrainerMention(text string) bool {
	return trainerRe.MatchString(NormalizeText(text))
}
