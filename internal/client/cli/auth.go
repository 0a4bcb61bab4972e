package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/genfit/internal/client/navigation"
	"github.com/dmitrijs2005/genfit/internal/client/validation"
	"github.com/dmitrijs2005/genfit/internal/client/viewmodel"
	"github.com/dmitrijs2005/genfit/internal/common"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
)

// DOBLayout is the date format the date-of-birth prompt accepts.
const DOBLayout = "2006-01-02"

// Login prompts for an e-mail or username and a password and opens a session.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Email atau username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	if err := a.login.Submit(ctx, identifier, password); err != nil {
		a.alertError(err, viewmodel.MsgLoginFailed)
		return err
	}

	printlnFn("Login berhasil.")
	return a.Home(ctx)
}

// Register walks through the sign-up form and, on success, continues with
// the personal-data step.
func (a *App) Register(ctx context.Context) error {
	if err := a.nav.Navigate(navigation.To(navigation.Register)); err != nil {
		return err
	}

	var f validation.RegistrationForm
	var err error

	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if f.PhoneNumber, err = getSimpleText(a.reader, "Nomor HP (diawali "+validation.PhonePrefix+")", a.out); err != nil {
		return err
	}
	// A number typed without the country prefix collapses to the bare prefix
	// and fails the phone check.
	f.PhoneNumber = validation.NormalizePhone(f.PhoneNumber)
	if f.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}
	if f.ConfirmPassword, err = getPassword("Konfirmasi Password", a.out); err != nil {
		return err
	}
	printlnFn("Syarat & Ketentuan:", a.links.Terms)
	printlnFn("Kebijakan Privasi:", a.links.Privacy)
	if f.Agree, err = getConfirm(a.reader, "Saya menyetujui Syarat & Ketentuan serta Kebijakan Privasi", a.out); err != nil {
		return err
	}

	if err := a.register.Submit(ctx, f); err != nil {
		a.alertError(err, viewmodel.MsgRegisterFailed)
		return err
	}

	printlnFn("Registrasi berhasil.")
	return a.Detail(ctx)
}

// Detail fills in the personal data of the signed-in account.
func (a *App) Detail(ctx context.Context) error {
	if cur := a.nav.Current().Name; cur != navigation.UserDetail && cur != navigation.EditProfile {
		if err := a.nav.Navigate(navigation.To(navigation.UserDetail)); err != nil {
			return err
		}
	}

	printlnFn("Data Diri")
	printlnFn("Sebelum kita lanjut, kenalan dulu yuk!")

	var f validation.UserDetailForm
	fullName, err := getSimpleText(a.reader, "Nama lengkap", a.out)
	if err != nil {
		return err
	}
	height, err := getSimpleText(a.reader, "Tinggi badan (cm)", a.out)
	if err != nil {
		return err
	}
	weight, err := getSimpleText(a.reader, "Berat badan (kg)", a.out)
	if err != nil {
		return err
	}
	dob, err := getSimpleText(a.reader, "Tanggal lahir ("+DOBLayout+")", a.out)
	if err != nil {
		return err
	}
	gender, err := getSimpleText(a.reader, "Gender (male/female)", a.out)
	if err != nil {
		return err
	}

	f.FullName = fullName
	f.HeightCm = parseDecimal(height)
	f.WeightKg = parseDecimal(weight)
	// An unparsable date leaves DOB zero, which validation rejects with
	// MsgInvalidDOB.
	if parsed, err := time.ParseInLocation(DOBLayout, strings.TrimSpace(dob), time.Local); err == nil {
		f.DOB = parsed
	}
	f.Gender = gender

	if err := a.userDetail.Submit(ctx, f); err != nil {
		a.alertError(err, viewmodel.MsgDetailFailed)
		return err
	}

	RenderAlert(a.out, "Success", viewmodel.MsgDetailAccepted)
	return a.Home(ctx)
}

// EditProfile refills the personal data from the Application tab.
func (a *App) EditProfile(ctx context.Context) error {
	if err := a.nav.Navigate(navigation.To(navigation.EditProfile)); err != nil {
		return err
	}
	return a.Detail(ctx)
}

// Logout asks for confirmation, then ends the session.
func (a *App) Logout(ctx context.Context) error {
	printlnFn(viewmodel.LogoutTitle)
	ok, err := getConfirm(a.reader, viewmodel.LogoutPrompt, a.out)
	if err != nil {
		return err
	}

	done, err := a.logout.Confirm(ctx, ok)
	if err != nil {
		a.alertError(err, "Logout gagal.")
		return err
	}
	if done {
		a.unmountScreens()
		printlnFn("Anda telah logout.")
	}
	return nil
}

func (a *App) alertError(err error, fallback string) {
	RenderAlert(a.out, "Error", common.UserMessage(err, fallback))
}

// parseDecimal accepts "," as decimal separator; unparsable input yields 0,
// which the form validation rejects.
func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}
