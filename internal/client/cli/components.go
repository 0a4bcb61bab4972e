package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/genfit/internal/client/viewmodel"
)

const cardWidth = 40

// RenderAlert prints a boxed title and message, the terminal stand-in for a
// blocking dialog.
func RenderAlert(w io.Writer, title, message string) {
	rule := strings.Repeat("=", cardWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, " %s\n", title)
	fmt.Fprintf(w, " %s\n", message)
	fmt.Fprintln(w, rule)
}

// RenderUserCard prints the Home greeting with height, weight and BMI.
func RenderUserCard(w io.Writer, d viewmodel.ProfileData) {
	fmt.Fprintln(w, strings.Repeat("-", cardWidth))
	fmt.Fprintln(w, " Halo,")
	fmt.Fprintf(w, " %s!\n", d.User.DisplayName())
	if info := d.User.UserInformation; info != nil {
		fmt.Fprintf(w, " %-22s %g\n", "Tinggi (Cm)", info.Height)
		fmt.Fprintf(w, " %-22s %g\n", "Berat (Kg)", info.Weight)
	}
	fmt.Fprintf(w, " %-22s %s\n", "Body Mass Index (BMI)", bmiText(d))
	fmt.Fprintln(w, strings.Repeat("-", cardWidth))
}

// RenderProfileCard prints the Application tab card: account and body data.
func RenderProfileCard(w io.Writer, d viewmodel.ProfileData) {
	fmt.Fprintln(w, strings.Repeat("-", cardWidth))
	fmt.Fprintf(w, " %s\n", d.User.DisplayName())
	fmt.Fprintf(w, " %s\n", d.User.Username)
	fmt.Fprintf(w, " %s\n", d.User.Email)
	if info := d.User.UserInformation; info != nil {
		fmt.Fprintf(w, " %-22s %g\n", "Tinggi (Cm)", info.Height)
		fmt.Fprintf(w, " %-22s %g\n", "Berat (Kg)", info.Weight)
	}
	if d.HasBMI {
		fmt.Fprintf(w, " %-22s %s (%s)\n", "Body Mass Index (BMI)", bmiText(d), d.Status.Label())
	}
	fmt.Fprintln(w, strings.Repeat("-", cardWidth))
}

// RenderProgramCard prints one program with a progress bar.
func RenderProgramCard(w io.Writer, p viewmodel.Program, locked bool) {
	const barWidth = 20
	filled := int(p.Progress()*barWidth + 0.5)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)

	lock := ""
	if locked {
		lock = " [terkunci]"
	}
	fmt.Fprintf(w, " %-18s [%s] %d/%d%s\n", p.Title, bar, p.Completed, p.Total, lock)
}

func bmiText(d viewmodel.ProfileData) string {
	if !d.HasBMI {
		return "-"
	}
	return fmt.Sprintf("%.1f", d.BMI)
}
