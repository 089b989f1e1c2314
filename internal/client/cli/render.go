package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/nutritrack/internal/models"
)

const barWidth = 20

func renderProfile(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(w, "  Goal:      %s\n", u.GoalType)
	fmt.Fprintf(w, "  Activity:  %s\n", u.ActivityLevel)
	fmt.Fprintf(w, "  Height:    %s\n", optional(u.HeightCM, "cm"))
	fmt.Fprintf(w, "  Weight:    %s\n", optional(u.WeightKG, "kg"))
	fmt.Fprintf(w, "  Calories:  %s\n", optional(u.CaloriesGoal, "kcal"))
	fmt.Fprintf(w, "  Protein:   %s\n", optional(u.ProteinGoalG, "g"))
	fmt.Fprintf(w, "  Carbs:     %s\n", optional(u.CarbsGoalG, "g"))
	fmt.Fprintf(w, "  Fats:      %s\n", optional(u.FatsGoalG, "g"))
}

func renderStats(w io.Writer, s *models.DailyStatsSnapshot) {
	fmt.Fprintf(w, "Summary for %s\n", s.Date)
	fmt.Fprintf(w, "  Calories  %s  remaining %.0f kcal\n", metricLine(s.Calories, "kcal"), s.Calories.Remaining)
	fmt.Fprintf(w, "  Burned    %.0f kcal\n", s.CaloriesBurned)
	fmt.Fprintf(w, "  Protein   %s\n", metricLine(s.Protein, "g"))
	fmt.Fprintf(w, "  Carbs     %s\n", metricLine(s.Carbs, "g"))
	fmt.Fprintf(w, "  Fats      %s\n", metricLine(s.Fats, "g"))
	fmt.Fprintf(w, "  Meals %d, workouts %d\n", s.MealsCount, s.WorkoutsCount)
}

// metricLine renders "consumed / goal unit [bar] pct%". Without a goal only
// the consumed amount is shown.
func metricLine(m models.MetricStats, unit string) string {
	if m.Goal <= 0 {
		return fmt.Sprintf("%.0f %s", m.Consumed, unit)
	}
	return fmt.Sprintf("%.0f / %.0f %s %s %d%%", m.Consumed, m.Goal, unit, bar(m.Progress), m.Percentage)
}

func bar(progress int) string {
	filled := progress * barWidth / 100
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func optional(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + " " + unit
}
