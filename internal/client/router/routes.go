package router

// Views supplies the loader of every screen in the default tree.
type Views struct {
	Login          Loader
	Register       Loader
	Home           Loader
	FaceDetection  Loader
	Questionnaire  Loader
	Result         Loader
	CombinedResult Loader
}

const (
	HomePath           = "/home"
	FaceDetectionPath  = "/home/face-detection"
	QuestionnairePath  = "/home/questionnaire"
	ResultPath         = "/home/result"
	CombinedResultPath = "/home/combined-result"
)

// DefaultRoutes is the application's route tree. The root and the home
// shell only redirect; home's children render inside it.
func DefaultRoutes(v Views) []Route {
	return []Route{
		{Path: "/", Redirect: LoginPath},
		{Path: LoginPath, Name: "Login", Load: v.Login},
		{Path: RegisterPath, Name: "Register", Load: v.Register},
		{
			Path:     HomePath,
			Name:     "Home",
			Load:     v.Home,
			Redirect: FaceDetectionPath,
			Children: []Route{
				{Path: "face-detection", Name: "FaceDetection", Load: v.FaceDetection},
				{Path: "questionnaire", Name: "Questionnaire", Load: v.Questionnaire},
				{Path: "result", Name: "Result", Load: v.Result},
				{Path: "combined-result", Name: "CombinedResult", Load: v.CombinedResult},
			},
		},
	}
}
