package cost

// Coefficients for the built-in energy models. These are the published
// values the equations were fitted with; every stored scenario is tuned
// against this exact scale.
const (
	RunningTimeCoeff     = 4.43  // cost units per hour of budget
	RunningDistanceCoeff = 1.39  // cost units per meter traveled
	RunningPaceCoeff     = 0.185 // cost units per m² per second of pace
	RunningClimbCoeff    = 30.43 // cost units per meter of attenuated climb
	RunningGradeOffset   = 0.43  // grade shift inside the attenuation
	RunningGradeBase     = 1.056 // inner attenuation base
	RunningClimbBase     = 1.133 // outer attenuation base

	WalkingDistanceCoeff = 0.1    // cost units per meter traveled
	WalkingClimbCoeff    = 1.8    // cost units per meter of elevation delta
	WalkingTimeCoeff     = 0.0583 // cost units per hour of budget

	ClimbAversionDistanceDivisor = 300.0 // meters of travel per cost unit

	// MinSegmentTime keeps the pace term finite when the time budget is zero.
	MinSegmentTime = 1e-9 // seconds
)
