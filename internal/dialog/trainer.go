package dialog

// handleTrainer answers trainer questions in a single shot. It keeps no
// multi-turn state; while the scenario lock holds, every message is answered
// afresh, and switching topics takes a scenario command or reset.
func handleTrainer(_ *Session, in turnInput) turnResult {
	if IsYogaMention(in.Raw) {
		return turnResult{Reply: replyTrainerYoga, Rule: "trainer.yoga"}
	}
	return turnResult{Reply: replyTrainerGeneric, Rule: "trainer.generic"}
}
