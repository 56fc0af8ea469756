package cli

import (
	"context"
	"fmt"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/api"
)

// profileView shows the current identity and offers a partial edit; empty
// answers keep the stored value.
func (a *App) profileView(ctx context.Context) error {
	id := a.store.Identity()
	if id == nil {
		return nil
	}

	fmt.Fprintln(a.out, titleStyle.Render("Profile"))
	fmt.Fprintf(a.out, "Username: %s\n", id.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", id.Email)
	if id.Phone != "" {
		fmt.Fprintf(a.out, "Phone:    %s\n", id.Phone)
	}
	if id.Address != "" {
		fmt.Fprintf(a.out, "Address:  %s\n", id.Address)
	}
	if id.IsAdmin {
		fmt.Fprintln(a.out, "Role:     administrator")
	}
	if exp, ok := a.store.TokenExpiry(); ok {
		fmt.Fprintln(a.out, faintStyle.Render("Session token expires "+exp.Local().Format("2006-01-02 15:04")))
	}

	edit, err := Confirm(a.reader, "Edit profile?", a.out)
	if err != nil {
		return err
	}
	if !edit {
		return nil
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", id.Email), a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", id.Phone), a.out)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, fmt.Sprintf("Address [%s]", id.Address), a.out)
	if err != nil {
		return err
	}

	upd := &api.ProfileUpdate{Email: email, Phone: phone, Address: address}
	if upd.Email == "" && upd.Phone == "" && upd.Address == "" {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	updated, err := a.store.UpdateProfile(ctx, upd)
	if err != nil {
		a.fail(err)
		return nil
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Profile updated, %s.", updated.Username)))
	return nil
}
