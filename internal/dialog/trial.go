package dialog

// handleTrial drives the generic trial-lesson track: audience, then the
// child age guard or the adult interest question, then time and phone.
func handleTrial(sess *Session, in turnInput) turnResult {
	switch sess.Stage {
	case StageIdle:
		if res, done := resolveAudience(sess, in); done {
			return res
		}
		sess.Stage = StageAskForWhom
		return turnResult{Reply: replyAskForWhom, Rule: "trial.entry"}

	case StageAskForWhom:
		return handleForWhomStage(sess, in)

	case StageAskKidAge:
		if in.Facts.Age > 0 {
			return applyKidAge(sess, in.Facts.Age)
		}
		return turnResult{Reply: replyKidAgeRepeat, Rule: "trial.age_repeat"}

	case StageKidAgeTooEarly:
		return handleTooEarlyStage(sess, in)

	case StageTeenOrAdult:
		return handleTeenOrAdultStage(sess, in)

	case StageAskInterest:
		return handleInterestStage(sess, in)

	case StageAskTime:
		return handleTimeStage(sess, in)

	case StageAskPhone:
		return handlePhoneStage(sess, in)
	}

	return turnResult{Reply: replyReady, Rule: "trial.already_ready"}
}

// resolveAudience short-circuits the audience question when the opening
// message already answers it.
func resolveAudience(sess *Session, in turnInput) (turnResult, bool) {
	switch {
	case mentionsChild(in.Norm) && in.Facts.Age > 0:
		return applyKidAge(sess, in.Facts.Age), true
	case mentionsChild(in.Norm):
		sess.Slots.ForWhom = "child"
		sess.Stage = StageAskKidAge
		return turnResult{Reply: replyAskKidAge, Rule: "trial.child_entry"}, true
	case mentionsAdult(in.Norm):
		sess.Slots.ForWhom = "adult"
		sess.Stage = StageAskInterest
		return turnResult{Reply: replyAskInterest, Rule: "trial.adult_entry"}, true
	}
	return turnResult{}, false
}
