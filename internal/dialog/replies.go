package dialog

import "strings"

// Canonical reply texts and quick-action labels. Kept together so product
// copy can be reviewed in one place.

const (
	replyNeutral = "Спасибо за ваш вопрос! Как мы можем вам помочь по записям, детским группам, аренде зала или вопросам о тренерах?"

	replyAskForWhom      = "Подскажите, пожалуйста, для кого вы подбираете занятие: для ребёнка или для себя?"
	replyAskKidAge       = "Для записи в детскую группу нам нужно знать возраст ребёнка. Сколько лет вашему ребёнку?"
	replyKidAgeRepeat    = "Пожалуйста, укажите возраст ребёнка числом, например 6."
	replyKidTooEarly     = "Малышам до 3 лет групповые занятия пока не подходят: в этом возрасте детям сложно заниматься в группе без родителей. Мы можем предложить консультацию или индивидуальные занятия, либо уточните, пожалуйста, возраст ещё раз."
	replyKidTooEarlyMenu = "Чем можем помочь дальше? Выберите вариант ниже или укажите другой возраст."
	replyTeenOrAdult     = "Для этого возраста детские группы уже не подходят. Подбираем занятие для подростка или для взрослого?"
	replyTeenRedirect    = "Для подростков у нас есть направление Choreo 12-17. Передам запрос администратору, чтобы подобрать расписание, или напишите, если хотите узнать подробнее."
	replyAskInterest     = "Какое направление интересно: танцы, йога, гимнастика или стретчинг?"
	replyInterestRepeat  = "Напишите, пожалуйста, что ближе: танцы, йога, гимнастика или стретчинг."
	replyAskTime         = "Когда удобно заниматься? Выберите вариант ниже или напишите своими словами."
	replyTimeRepeat      = "Подскажите, пожалуйста, когда удобно: будни или выходные, утро, день или вечер?"
	replyAskPhone        = "Отлично! Оставьте, пожалуйста, контактный телефон, и администратор подтвердит запись."
	replyPhoneRetry      = "Не удалось распознать номер. Укажите, пожалуйста, телефон в формате 8 900 000-00-00."
	replyPhoneEscalate   = "Понимаю, что делиться номером не всегда удобно. Можем оформить запись по телефону, передать вопрос администратору без номера или отменить заявку — как вам удобнее?"
	replyPhoneOuts       = "Как поступим? Можете оставить телефон, позвать администратора без номера или отменить заявку."
	replyReady           = "Спасибо! Заявка принята, администратор свяжется с вами для подтверждения записи."
	replyResetDone       = "Хорошо, начнём сначала. Чем можем помочь: запись на занятие, детские группы, йога или аренда зала?"
	replyAdminHandoff    = "Ваш запрос передан администратору. В ближайшее время с вами свяжутся для уточнения деталей."

	replyYogaForWhom = "Йога — отличный выбор! Подбираем занятие для вас или для ребёнка?"

	replyRentEntry          = "Давайте подберём аренду зала. Напишите, пожалуйста, дату (дд.мм), время (чч:мм), количество человек и формат мероприятия одним сообщением, например: 05.12 18:00, 10 человек, вечеринка."
	replyRentNeedBoth       = "Чтобы зафиксировать аренду, нужны дата (дд.мм) и время (чч:мм) одним сообщением, например: 05.12 18:00."
	replyRentFollowup       = "Принято: зал на %s в %s. Для брони потребуется предоплата 50%%. Какой формат мероприятия планируется: тренировка, репетиция, фотосессия или вечеринка?"
	replyRentFollowupRepeat = "Подскажите, пожалуйста, формат мероприятия: тренировка, репетиция, фотосессия или вечеринка?"
	replyRentClosed         = "Отлично, формат «%s» записали. Администратор подтвердит бронь и свяжется с вами по деталям оплаты."
	replyRentTooMany        = "Для формата «%s» вместимость зала до %d человек. Рассмотрите, пожалуйста, другой формат или меньшее количество гостей."
	replyRentCancel         = "Хорошо, аренду не оформляем. Если понадобится зал, напишите, и мы всё рассчитаем."

	replyRentLegacyTime   = "Давайте рассчитаем аренду зала. Укажите, пожалуйста, время (например, 16:00) или напишите, аренда до 16:00 или после 16:00."
	replyRentLegacyPeople = "Сколько человек планируется на мероприятии?"
	replyRentLegacyFormat = "Какой формат мероприятия?\n1) Тренировка\n2) Репетиция\n3) Мероприятие"
	replyRentLegacyRepeat = "Пожалуйста, выберите формат, указав цифру 1, 2 или 3, или напишите: тренировка, репетиция, мероприятие."
	replyRentLegacyPrice  = "Стоимость аренды составит %d руб/час. Заявку передаю администратору, он свяжется с вами для подтверждения брони."

	replyTrainerYoga    = "По йоге у нас занимается тренер Галина. Вы хотите записаться на занятие по йоге или узнать подробнее о тренере?"
	replyTrainerGeneric = "У нас работают опытные тренеры по разным направлениям. Напишите, пожалуйста, по какому направлению вам нужен тренер или хотите сразу записаться."

	replyOfferDance = "Мы работаем с направлениями Latina Solo, High Heels, Dance Mix 7-11, Choreo 12-17 и Азбука танца. Напишите, пожалуйста, что вам ближе, и я предложу варианты."
	replyOffer      = "У нас танцевальные и детские группы, йога, стретчинг и аренда зала. Напишите, что интересует, и я помогу подобрать вариант."
)

// Quick-action labels.
const (
	ActionConsultation = "Консультация"
	ActionIndividual   = "Индивидуальные занятия"
	ActionOtherAge     = "Указать другой возраст"
	ActionForTeen      = "Для подростка"
	ActionForAdult     = "Для взрослого"
	ActionLeavePhone   = "Оставить телефон"
	ActionCallAdmin    = "Позвать администратора"
	ActionCancel       = "Отмена"
)

var tooEarlyActions = []string{ActionConsultation, ActionIndividual, ActionOtherAge}
var teenOrAdultActions = []string{ActionForTeen, ActionForAdult}
var phoneOutActions = []string{ActionLeavePhone, ActionCallAdmin, ActionCancel}

// The six preferred-time combinations offered as quick actions; free text is
// mapped onto the same labels.
var timeSlotActions = []string{
	"Будни, утро", "Будни, день", "Будни, вечер",
	"Выходные, утро", "Выходные, день", "Выходные, вечер",
}

// Static schedule listing returned by the "расписание" command.
var scheduleLines = []string{
	"• Понедельник, 18:00 — Latina Solo",
	"• Вторник, 19:00 — High Heels",
	"• Среда, 18:00 — Dance Mix 7-11",
	"• Четверг, 17:00 — Choreo 12-17",
	"• Пятница, 18:00 — Хатха-йога",
	"• Суббота, 10:00 — Азбука танца 3-5",
}

func scheduleReply() string {
	return "Расписание занятий:\n\n" + strings.Join(scheduleLines, "\n") + "\n\nХотите записаться на пробное занятие?"
}
