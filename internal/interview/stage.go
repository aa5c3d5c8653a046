package interview

// Stage identifies the current phase of an interview session.
type Stage int

const (
	StageGreeting Stage = iota
	StageCollectInfo
	StageTechnicalQuestions
	StageFarewell
)

var stageNames = map[Stage]string{
	StageGreeting:           "greeting",
	StageCollectInfo:        "collect_info",
	StageTechnicalQuestions: "technical_questions",
	StageFarewell:           "farewell",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// transitions is the closed set of allowed stage moves. Progress is
// one-directional; farewell is reachable from every stage because exit
// keywords short-circuit the normal flow.
var transitions = map[Stage][]Stage{
	StageGreeting:           {StageCollectInfo, StageFarewell},
	StageCollectInfo:        {StageTechnicalQuestions, StageFarewell},
	StageTechnicalQuestions: {StageFarewell},
	StageFarewell:           {},
}

func (s Stage) canAdvance(to Stage) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
