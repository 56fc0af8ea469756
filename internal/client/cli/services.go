package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/booking"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

// servicesView lists the service catalog.
func (a *App) servicesView(ctx context.Context) error {
	services, err := a.services.List(ctx)
	if err != nil {
		a.fail(err)
		return nil
	}

	fmt.Fprintln(a.out, titleStyle.Render("Services"))
	if len(services) == 0 {
		fmt.Fprintln(a.out, "No services are available yet.")
		return nil
	}

	rows := make([][]string, 0, len(services))
	for _, s := range services {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10), s.Name, formatPrice(s.Price), s.Description,
		})
	}
	fmt.Fprint(a.out, renderTable([]string{"ID", "Name", "Price", "Description"}, rows))
	fmt.Fprintln(a.out, faintStyle.Render("Use 'book <id>' to book a service."))
	return nil
}

// bookView runs the booking form: pick a service (optionally pre-selected
// via argument), fill in the details, validate locally, then submit once.
// Validation failures never issue the network call.
func (a *App) bookView(ctx context.Context, args []string) error {
	services, err := a.services.List(ctx)
	if err != nil {
		a.fail(err)
		return nil
	}
	if len(services) == 0 {
		fmt.Fprintln(a.out, "No services are available to book.")
		return nil
	}

	fmt.Fprintln(a.out, titleStyle.Render("Book a service"))

	var selected *models.Service
	if len(args) > 0 {
		if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
			selected = findService(services, id)
		}
		if selected == nil {
			fmt.Fprintf(a.out, "No service with id %q; pick one below.\n", args[0])
		}
	}

	if selected == nil {
		rows := make([][]string, 0, len(services))
		for _, s := range services {
			rows = append(rows, []string{strconv.FormatInt(s.ID, 10), s.Name, formatPrice(s.Price)})
		}
		fmt.Fprint(a.out, renderTable([]string{"ID", "Name", "Price"}, rows))

		line, err := getSimpleText(a.reader, "Service id", a.out)
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil || findService(services, id) == nil {
			fmt.Fprintln(a.out, errorStyle.Render("service: a service must be selected"))
			return nil
		}
		selected = findService(services, id)
	}

	fmt.Fprintf(a.out, "Selected: %s - %s (%s)\n", selected.Name, selected.Description, formatPrice(selected.Price))

	problem, err := GetMultiline(a.reader, "Describe the problem", a.out)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Preferred date (YYYY-MM-DD, today or later)", a.out)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Your address", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone number", a.out)
	if err != nil {
		return err
	}
	methods := make([]string, len(booking.PaymentMethods))
	for i, m := range booking.PaymentMethods {
		methods[i] = string(m)
	}
	payment, err := GetChoice(a.reader, "Payment method", methods, string(booking.PaymentCash), a.out)
	if err != nil {
		return err
	}

	req := &booking.CreateRequest{
		ServiceID:          selected.ID,
		ProblemDescription: problem,
		PreferredDate:      date,
		Address:            address,
		Phone:              phone,
		PaymentMethod:      booking.PaymentMethod(payment),
	}

	var verrs booking.ValidationErrors
	if err := req.Validate(a.now()); err != nil {
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				fmt.Fprintln(a.out, errorStyle.Render(v.Error()))
			}
			return nil
		}
		return err
	}

	created, err := a.bookings.Create(ctx, req)
	if err != nil {
		a.fail(err)
		return nil
	}

	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Booking #%d created. See it with 'my-bookings'.", created.ID)))
	return nil
}

func findService(services []models.Service, id int64) *models.Service {
	for i := range services {
		if services[i].ID == id {
			return &services[i]
		}
	}
	return nil
}
