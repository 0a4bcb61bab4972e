package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/genfit/internal/client/navigation"
	"github.com/dmitrijs2005/genfit/internal/client/viewmodel"
)

// AboutText is shown on the Information screen.
const AboutText = "Genfit membantu Anda memantau BMI, belajar gizi dan kesehatan mental, serta berkonsultasi dengan tenaga kesehatan."

// Professionals listed on the telehealth selection screen.
var Professionals = []string{"Dokter Umum", "Ahli Gizi", "Psikolog"}

func (a *App) getStatus() string {
	s := a.nav.Current().String()
	if a.nav.Current().Name == navigation.MainTabs {
		s += "/" + string(a.nav.Tab())
	}
	return fmt.Sprintf("(%s %s)", s, a.Mode())
}

// renderCurrent draws the screen the navigator starts on.
func (a *App) renderCurrent(ctx context.Context) {
	switch a.nav.Current().Name {
	case navigation.MainTabs:
		_ = a.Home(ctx)
	default:
		printlnFn("Silakan 'login' atau 'register'.")
	}
}

// showTab brings MainTabs to the top and selects t.
func (a *App) showTab(t navigation.Tab) error {
	a.unmountScreens()
	if a.nav.Current().Name != navigation.MainTabs {
		if err := a.nav.Reset(navigation.To(navigation.MainTabs)); err != nil {
			return err
		}
	}
	return a.nav.SelectTab(t)
}

func (a *App) unmountScreens() {
	a.home.Unmount()
	a.profile.Unmount()
}

// Home renders the Home tab: the BMI card, telehealth entry and programs.
func (a *App) Home(ctx context.Context) error {
	if err := a.showTab(navigation.TabHome); err != nil {
		return err
	}

	res := a.home.Mount(ctx)
	switch {
	case res.Status == viewmodel.Failure:
		a.alertError(res.Err, "Gagal memuat data pengguna.")
	case res.Data.HasInformation:
		RenderUserCard(a.out, res.Data)
	default:
		printlnFn(viewmodel.MsgNoUserData)
	}

	printlnFn("Telehealth: Konsultasi dengan tenaga kesehatan disini! (ketik 'telehealth')")
	for _, p := range a.home.Programs() {
		RenderProgramCard(a.out, p, !a.home.HasPreTest())
	}
	if !a.home.HasPreTest() {
		printlnFn(viewmodel.MsgNoPreTest)
	}
	return res.Err
}

// Profile renders the Application tab: the profile card and its menu.
func (a *App) Profile(ctx context.Context) error {
	if err := a.showTab(navigation.TabApplication); err != nil {
		return err
	}

	res := a.profile.Mount(ctx)
	switch {
	case res.Status == viewmodel.Failure:
		a.alertError(res.Err, "Gagal memuat data pengguna.")
	case res.Data.HasInformation:
		RenderProfileCard(a.out, res.Data)
	default:
		printlnFn(viewmodel.MsgNoUserData)
	}

	printlnFn("BMI Calculator: Hitung Body Mass Index (BMI) disini (ketik 'bmi')")
	printlnFn("Edit Profile (ketik 'edit')")
	printlnFn("Logout (ketik 'logout')")
	return res.Err
}

// BMI runs the stand-alone calculator and returns to the previous screen.
func (a *App) BMI(ctx context.Context) error {
	if err := a.nav.Navigate(navigation.To(navigation.BMICalculator)); err != nil {
		return err
	}
	defer a.nav.Back()

	weight, err := getSimpleText(a.reader, "Berat badan (kg)", a.out)
	if err != nil {
		return err
	}
	height, err := getSimpleText(a.reader, "Tinggi badan (cm)", a.out)
	if err != nil {
		return err
	}

	res := a.calculator.Calculate(weight, height)
	if res.Status == viewmodel.Failure {
		RenderAlert(a.out, "Error", "Harap masukkan berat dan tinggi badan yang valid.")
		return res.Err
	}

	RenderAlert(a.out, "Body Mass Index (BMI)", fmt.Sprintf("%.1f - %s", res.Data.BMI, res.Data.Status.Label()))
	return nil
}

// Learn lists the programs, or opens the learning session of topic and,
// when material is set, that reading material.
func (a *App) Learn(ctx context.Context, topic, material string) error {
	if err := a.showTab(navigation.TabLearning); err != nil {
		return err
	}

	if topic == "" {
		for _, p := range a.home.Programs() {
			printlnFn(fmt.Sprintf(" %-10s %s", p.Topic, p.Title))
		}
		printlnFn("Ketik 'learn <topik>' untuk memulai.")
		return nil
	}

	if err := a.home.OpenProgram(topic); err != nil {
		RenderAlert(a.out, "Error", fmt.Sprintf("Topik %q tidak ditemukan.", topic))
		return err
	}
	printlnFn("Sesi belajar:", topic)

	if material != "" {
		if err := a.home.OpenMaterial(topic, material); err != nil {
			RenderAlert(a.out, "Error", fmt.Sprintf("Materi %q tidak tersedia untuk topik %q.", material, topic))
			return err
		}
		printlnFn("Materi:", a.nav.Current().String())
	}
	printlnFn("Ketik 'back' untuk kembali.")
	return nil
}

// Info shows the app introduction.
func (a *App) Info(ctx context.Context) error {
	if err := a.nav.Navigate(navigation.To(navigation.Information)); err != nil {
		return err
	}
	printlnFn(AboutText)
	printlnFn("Ketik 'back' untuk kembali.")
	return nil
}

// Forum shows the Forum tab.
func (a *App) Forum(ctx context.Context) error {
	if err := a.showTab(navigation.TabForum); err != nil {
		return err
	}
	printlnFn("Forum diskusi segera hadir.")
	return nil
}

// Telehealth opens the telehealth screen and its professional selection.
func (a *App) Telehealth(ctx context.Context) error {
	if err := a.home.OpenTelehealth(); err != nil {
		return err
	}
	printlnFn("Telehealth")
	printlnFn("Konsultasi dengan tenaga kesehatan disini!")

	if err := a.nav.Navigate(navigation.To(navigation.MedicalProfessionalSelection)); err != nil {
		return err
	}
	for i, p := range Professionals {
		printlnFn(fmt.Sprintf(" %d. %s", i+1, p))
	}
	printlnFn("Ketik 'back' untuk kembali.")
	return nil
}

// Terms prints the terms-of-service link.
func (a *App) Terms(ctx context.Context) error {
	printlnFn("Syarat & Ketentuan:", a.links.Terms)
	return nil
}

// Privacy prints the privacy-policy link.
func (a *App) Privacy(ctx context.Context) error {
	printlnFn("Kebijakan Privasi:", a.links.Privacy)
	return nil
}

// Back pops the current screen.
func (a *App) Back(ctx context.Context) error {
	if !a.nav.Back() {
		printlnFn("Sudah di layar utama.")
	}
	return nil
}
