// Package catalog holds the static learning content shown on the dashboard.
package catalog

import (
	"math/rand/v2"
	"slices"
)

const (
	RoleUser            = "User"
	RoleAdmin           = "Admin"
	RoleBusinessAnalyst = "Business Analyst"
	RoleDataScientist   = "Data Scientist"
	ThemeBright         = "Bright Mode"
	ThemeDark           = "Dark Mode"
	DefaultTheme        = ThemeBright
	DefaultTopic        = "Python Basics"
)

type Tool struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Shortcut is a canned question that can be sent to the tutor in one click.
type Shortcut struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

var Roles = []string{RoleUser, RoleAdmin, RoleBusinessAnalyst, RoleDataScientist}

var roleMessages = map[string]string{
	RoleAdmin:           "Admin access granted. Monitor platform activity.",
	RoleBusinessAnalyst: "Analyze trends and model outcomes.",
	RoleDataScientist:   "Build and evaluate ML models.",
	RoleUser:            "Learn Data Science topics interactively.",
}

var Topics = []string{
	"Python Basics",
	"Pandas & Numpy",
	"Data Cleaning",
	"EDA",
	"Machine Learning",
	"Model Evaluation",
	"Statistics",
}

var Checklist = []string{
	"Python Basics",
	"Pandas and Numpy",
	"Data Visualization (Matplotlib/Seaborn)",
	"Regression Models",
	"Classification Models",
	"Unsupervised Learning",
	"Model Evaluation Metrics",
}

var Tips = []string{
	"Normalize features when using algorithms like KNN or SVM.",
	"Always split data before training (train/test).",
	"Use cross-validation for better generalization.",
	"Visualize feature importance in tree-based models.",
	"Don't forget to check for data leakage!",
}

var Tools = []Tool{
	{Name: "Show Dataset Summary", Content: "Use `df.describe()` in pandas to see stats."},
	{Name: "Calculate Accuracy", Content: "Accuracy = (TP + TN) / (TP + TN + FP + FN)"},
	{Name: "Linear Regression Formula", Content: "y = β₀ + β₁x"},
}

var Resources = []Resource{
	{Title: "Pandas Docs", URL: "https://pandas.pydata.org/docs/"},
	{Title: "Scikit-learn User Guide", URL: "https://scikit-learn.org/stable/user_guide.html"},
	{Title: "Statistics Cheat Sheet (MIT)", URL: "https://web.mit.edu/~csvoss/Public/usabo/stats_handout.pdf"},
}

var Shortcuts = []Shortcut{
	{ID: "overfitting", Label: "What is Overfitting?", Prompt: "What is overfitting in machine learning?"},
	{ID: "supervised-vs-unsupervised", Label: "Difference Between Supervised and Unsupervised?", Prompt: "Explain the difference between supervised and unsupervised learning."},
}

var Themes = []string{ThemeBright, ThemeDark}

func IsRole(role string) bool {
	return slices.Contains(Roles, role)
}

func IsTopic(topic string) bool {
	return slices.Contains(Topics, topic)
}

func IsTheme(theme string) bool {
	return slices.Contains(Themes, theme)
}

// ChecklistIndex returns the position of a checklist item, or -1.
func ChecklistIndex(item string) int {
	return slices.Index(Checklist, item)
}

func RoleMessage(role string) string {
	return roleMessages[role]
}

func FindShortcut(id string) (Shortcut, bool) {
	for _, s := range Shortcuts {
		if s.ID == id {
			return s, true
		}
	}
	return Shortcut{}, false
}

// RandomTip picks the daily tip.
func RandomTip() string {
	return Tips[rand.IntN(len(Tips))]
}
