package dialog

import (
	"fmt"
	"regexp"
	"strconv"
)

// Hall pricing: hourly rates in rubles split by time of day and group size,
// with discounted rates from bulkHours on.
type rentTier struct {
	Evening   bool
	SmallRate int // up to smallGroupMax people
	LargeRate int
	BulkSmall int
	BulkLarge int
}

const (
	smallGroupMax   = 10
	bulkHours       = 8
	eveningFromHour = 16
)

var rentTiers = []rentTier{
	{Evening: false, SmallRate: 900, LargeRate: 1100, BulkSmall: 700, BulkLarge: 1100},
	{Evening: true, SmallRate: 1300, LargeRate: 1500, BulkSmall: 700, BulkLarge: 1100},
}

// formatLimits caps the headcount per event format.
var formatLimits = map[string]int{
	"Тренировка": 15,
	"Репетиция":  30,
	"Фотосессия": 10,
	"Вечеринка":  45,
}

var rentFormats = []struct {
	label string
	re    *regexp.Regexp
}{
	{"Тренировка", trainingRe},
	{"Репетиция", rehearsalRe},
	{"Фотосессия", regexp.MustCompile(`фотосесс|фотосъ[её]мк|фото`)},
	{"Вечеринка", regexp.MustCompile(`вечеринк|праздник|день рожден|мероприят|корпоратив`)},
}

var (
	rentCancelRe   = regexp.MustCompile(`передумал|не надо|не нужно|отказ|не актуальн`)
	rentPricingRe  = regexp.MustCompile(`стоимост|цен|сколько стоит|прайс|тариф|почём|почем`)
	peopleRe       = regexp.MustCompile(`([0-9]{1,3})\s*(?:чел|человек|гост)`)
	rentDaytimeRe  = regexp.MustCompile(`до 16|утр|дн[её]м|день`)
	rentEveningRe  = regexp.MustCompile(`после 16|вечер|ноч`)
	legacyEventRe  = regexp.MustCompile(`мероприят|праздник|вечеринк`)
	trainingRe     = regexp.MustCompile(`трениров`)
	rehearsalRe    = regexp.MustCompile(`репетиц`)
)

// rentPricingReply renders the price list from the tier table so copy and
// billing data cannot drift apart.
func rentPricingReply() string {
	day, eve := rentTiers[0], rentTiers[1]
	return fmt.Sprintf(
		"Стоимость аренды: до %d:00 — %d руб/час (до %d человек) или %d руб/час, после %d:00 — %d руб/час (до %d человек) или %d руб/час. При аренде от %d часов действуют оптовые цены %d/%d руб/час. Предоплата 50%%, бронь минимум за 12 часов.",
		eveningFromHour, day.SmallRate, smallGroupMax, day.LargeRate,
		eveningFromHour, eve.SmallRate, smallGroupMax, eve.LargeRate,
		bulkHours, day.BulkSmall, day.BulkLarge,
	)
}

func detectRentFormat(norm string) string {
	for _, f := range rentFormats {
		if f.re.MatchString(norm) {
			return f.label
		}
	}
	return ""
}

func detectPeople(norm string) int {
	m := peopleRe.FindStringSubmatch(norm)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// legacyHourlyRate is the simplified rate of the sequential flow.
func legacyHourlyRate(people int) int {
	if people > 0 && people <= smallGroupMax {
		return 1200
	}
	return 1500
}

// handleRent drives the hall-rental track. The rental intent is sticky: once
// entered, every message lands here until the user cancels, resets or closes
// the booking. The primary flow collects date and time in a single message;
// the sequential legacy flow is kept behind a config switch.
func handleRent(sess *Session, in turnInput, legacy bool) turnResult {
	if rentCancelRe.MatchString(in.Norm) {
		sess.ResetTopic()
		return turnResult{Reply: replyRentCancel, Rule: "rent.cancel"}
	}
	if p := detectPeople(in.Norm); p > 0 {
		sess.Slots.People = p
	}

	if legacy {
		return handleRentLegacy(sess, in)
	}

	switch sess.Stage {
	case StageIdle:
		if res, done := tryRentDetails(sess, in); done {
			return res
		}
		sess.Stage = StageRentWait
		return turnResult{Reply: replyRentEntry, Rule: "rent.entry"}

	case StageRentWait:
		if res, done := tryRentDetails(sess, in); done {
			return res
		}
		if rentPricingRe.MatchString(in.Norm) {
			return turnResult{Reply: rentPricingReply(), Rule: "rent.pricing"}
		}
		return turnResult{Reply: replyRentNeedBoth, Rule: "rent.need_both"}

	case StageRentFollowup:
		if rentPricingRe.MatchString(in.Norm) {
			return turnResult{Reply: rentPricingReply(), Rule: "rent.pricing"}
		}
		if format := detectRentFormat(in.Norm); format != "" {
			if limit := formatLimits[format]; sess.Slots.People > limit {
				return turnResult{Reply: fmt.Sprintf(replyRentTooMany, format, limit), Rule: "rent.too_many"}
			}
			sess.Slots.Format = format
			sess.Stage = StageReady
			return turnResult{Reply: fmt.Sprintf(replyRentClosed, format), Rule: "rent.closed", LeadReady: true}
		}
		return turnResult{Reply: replyRentFollowupRepeat, Rule: "rent.followup_repeat"}
	}

	return turnResult{Reply: replyReady, Rule: "rent.already_ready"}
}

// tryRentDetails captures date and time when both appear in one message.
func tryRentDetails(sess *Session, in turnInput) (turnResult, bool) {
	date, clock := ExtractDateTime(in.Raw)
	if date != "" {
		sess.Slots.RentDate = date
	}
	if clock != "" {
		sess.Slots.RentTime = clock
	}
	if sess.Slots.RentDate == "" || sess.Slots.RentTime == "" {
		return turnResult{}, false
	}
	sess.Stage = StageRentFollowup
	return turnResult{
		Reply: fmt.Sprintf(replyRentFollowup, sess.Slots.RentDate, sess.Slots.RentTime),
		Rule:  "rent.details_captured",
	}, true
}

// handleRentLegacy is the older sequential flow: time bucket, then headcount,
// then format, closing with a flat hourly quote.
func handleRentLegacy(sess *Session, in turnInput) turnResult {
	switch sess.Stage {
	case StageIdle:
		sess.Stage = StageRentNeedTime
		return turnResult{Reply: replyRentLegacyTime, Rule: "rent.legacy_entry"}

	case StageRentNeedTime:
		bucket := detectRentBucket(in)
		if bucket == "" {
			return turnResult{Reply: replyRentLegacyTime, Rule: "rent.legacy_time_repeat"}
		}
		sess.Slots.RentBucket = bucket
		sess.Stage = StageRentNeedPeople
		return turnResult{Reply: replyRentLegacyPeople, Rule: "rent.legacy_time_captured"}

	case StageRentNeedPeople:
		people := detectPeople(in.Norm)
		if people == 0 {
			if age := ExtractAge(in.Raw); age > 0 {
				// a bare numeral here is a headcount, not an age
				people = age
			}
		}
		if people == 0 {
			return turnResult{Reply: replyRentLegacyPeople, Rule: "rent.legacy_people_repeat"}
		}
		sess.Slots.People = people
		sess.Stage = StageRentNeedFormat
		return turnResult{Reply: replyRentLegacyFormat, Rule: "rent.legacy_people_captured"}

	case StageRentNeedFormat:
		format := detectLegacyFormat(in.Norm)
		if format == "" {
			return turnResult{Reply: replyRentLegacyRepeat, Rule: "rent.legacy_format_repeat"}
		}
		sess.Slots.Format = format
		sess.Stage = StageReady
		return turnResult{
			Reply:     fmt.Sprintf(replyRentLegacyPrice, legacyHourlyRate(sess.Slots.People)),
			Rule:      "rent.legacy_closed",
			LeadReady: true,
		}
	}

	return turnResult{Reply: replyReady, Rule: "rent.already_ready"}
}

func detectRentBucket(in turnInput) string {
	if _, clock := ExtractDateTime(in.Raw); clock != "" {
		hour, _ := strconv.Atoi(clock[:2])
		if hour < eveningFromHour {
			return "daytime"
		}
		return "evening"
	}
	switch {
	case rentDaytimeRe.MatchString(in.Norm):
		return "daytime"
	case rentEveningRe.MatchString(in.Norm):
		return "evening"
	}
	return ""
}

func detectLegacyFormat(norm string) string {
	switch {
	case norm == "1" || trainingRe.MatchString(norm):
		return "Тренировка"
	case norm == "2" || rehearsalRe.MatchString(norm):
		return "Репетиция"
	case norm == "3" || legacyEventRe.MatchString(norm):
		return "Мероприятие"
	}
	return ""
}
