package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/api"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

// manageServicesView is the admin catalog editor: plain CRUD, delete behind
// an explicit confirmation, last write wins. The list is re-fetched after
// every mutation.
func (a *App) manageServicesView(ctx context.Context) error {
	for {
		services, err := a.services.List(ctx)
		if err != nil {
			a.fail(err)
			return nil
		}

		fmt.Fprintln(a.out, titleStyle.Render("Manage services"))
		if len(services) == 0 {
			fmt.Fprintln(a.out, "The catalog is empty.")
		} else {
			rows := make([][]string, 0, len(services))
			for _, s := range services {
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10), s.Name, formatPrice(s.Price), s.Description,
				})
			}
			fmt.Fprint(a.out, renderTable([]string{"ID", "Name", "Price", "Description"}, rows))
		}

		line, err := getSimpleText(a.reader, "Action: add, edit <id>, delete <id>, or Enter to go back", a.out)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		parts := strings.Fields(line)

		switch {
		case parts[0] == "add" && len(parts) == 1:
			in, ok, err := a.serviceForm(nil)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if _, err := a.services.Create(ctx, in); err != nil {
				a.fail(err)
				continue
			}
			fmt.Fprintln(a.out, successStyle.Render("Service created."))

		case parts[0] == "edit" && len(parts) == 2:
			s := serviceByArg(services, parts[1])
			if s == nil {
				fmt.Fprintln(a.out, "No such service.")
				continue
			}
			in, ok, err := a.serviceForm(s)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if _, err := a.services.Update(ctx, s.ID, in); err != nil {
				a.fail(err)
				continue
			}
			fmt.Fprintln(a.out, successStyle.Render("Service updated."))

		case parts[0] == "delete" && len(parts) == 2:
			s := serviceByArg(services, parts[1])
			if s == nil {
				fmt.Fprintln(a.out, "No such service.")
				continue
			}
			ok, err := Confirm(a.reader, fmt.Sprintf("Delete service %q?", s.Name), a.out)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := a.services.Delete(ctx, s.ID); err != nil {
				a.fail(err)
				continue
			}
			fmt.Fprintln(a.out, successStyle.Render("Service deleted."))

		default:
			fmt.Fprintln(a.out, "Unknown action.")
		}
	}
}

// serviceForm collects name, description, and price. When editing, an empty
// answer keeps the current value. It validates name and description
// non-empty and price a non-negative number; violations are shown inline
// and the form is abandoned without a request.
func (a *App) serviceForm(current *models.Service) (*api.ServiceInput, bool, error) {
	namePrompt, descPrompt, pricePrompt := "Name", "Description", "Price"
	if current != nil {
		namePrompt = fmt.Sprintf("Name [%s]", current.Name)
		descPrompt = fmt.Sprintf("Description [%s]", current.Description)
		pricePrompt = fmt.Sprintf("Price [%s]", current.Price.String())
	}

	name, err := getSimpleText(a.reader, namePrompt, a.out)
	if err != nil {
		return nil, false, err
	}
	description, err := getSimpleText(a.reader, descPrompt, a.out)
	if err != nil {
		return nil, false, err
	}
	priceText, err := getSimpleText(a.reader, pricePrompt, a.out)
	if err != nil {
		return nil, false, err
	}

	if current != nil {
		if name == "" {
			name = current.Name
		}
		if description == "" {
			description = current.Description
		}
		if priceText == "" {
			priceText = current.Price.String()
		}
	}

	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(a.out, errorStyle.Render("name: must not be empty"))
		return nil, false, nil
	}
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(a.out, errorStyle.Render("description: must not be empty"))
		return nil, false, nil
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil || price.IsNegative() {
		fmt.Fprintln(a.out, errorStyle.Render("price: must be a non-negative number"))
		return nil, false, nil
	}

	return &api.ServiceInput{Name: name, Description: description, Price: price}, true, nil
}

func serviceByArg(services []models.Service, arg string) *models.Service {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil
	}
	return findService(services, id)
}
