package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
)

// withForm runs fn against a fresh form after looking phone up, the same
// sequence a visitor goes through on the page.
func withForm(cmd *cobra.Command, phone string, fn func(ctx context.Context, a *app, st *domain.FormState) error) error {
	ctx := session.WithID(cmd.Context(), "cli-"+session.NewID())

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.close(closeCtx)
	}()

	st := domain.NewFormState()
	check := ucAppointment.NewCheckAppointment(a.repo, a.audit, timezone.Location(a.cfg.Timezone))
	err = check.Execute(ctx, st, phone)
	if err == nil && fn != nil {
		err = fn(ctx, a, st)
	}

	printForm(cmd.OutOrStdout(), st, timezone.Location(a.cfg.Timezone))
	return err
}

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <phone>",
		Short: "Show the appointment booked for a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withForm(cmd, args[0], nil)
		},
	}
}

func bookCmd() *cobra.Command {
	var draft domain.Draft
	var service string

	cmd := &cobra.Command{
		Use:   "book <phone>",
		Short: "Create an appointment, or update the upcoming one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Service = domain.Service(strings.ToLower(service))
			return withForm(cmd, args[0], func(ctx context.Context, a *app, st *domain.FormState) error {
				if st.Mode == domain.ModeUpdateOrDelete {
					return ucAppointment.NewUpdateAppointment(a.repo, a.audit).Execute(ctx, st, draft)
				}
				return ucAppointment.NewCreateAppointment(a.repo, a.audit).Execute(ctx, st, draft)
			})
		},
	}

	cmd.Flags().StringVar(&draft.Name, "name", "", "Customer name")
	cmd.Flags().StringVar(&draft.Date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&draft.Time, "time", "", "Time (HH:MM)")
	cmd.Flags().StringVar(&service, "service", "", "facial, massage, haircut or manicure")
	cmd.Flags().StringVar(&draft.SpecialRequests, "requests", "", "Special requests")
	return cmd
}

func cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <phone>",
		Short: "Delete the upcoming appointment for a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withForm(cmd, args[0], func(ctx context.Context, a *app, st *domain.FormState) error {
				return ucAppointment.NewDeleteAppointment(a.repo, a.audit).Execute(ctx, st)
			})
		},
	}
}

func printForm(w io.Writer, st *domain.FormState, loc *time.Location) {
	for _, t := range st.TakeToasts() {
		fmt.Fprintf(w, "[%s] %s\n", t.Level, t.Message)
	}

	if st.Mode != domain.ModeUpdateOrDelete || st.Lookup == nil || st.Lookup.Appointment == nil {
		return
	}
	ap := st.Lookup.Appointment
	fmt.Fprintf(w, "Name:             %s\n", ap.Name)
	fmt.Fprintf(w, "Date:             %s\n", timezone.FormatDate(loc)(ap.Date))
	fmt.Fprintf(w, "Time:             %s\n", ap.Time)
	fmt.Fprintf(w, "Service:          %s\n", domain.Service(ap.Service).Label())
	fmt.Fprintf(w, "Special Requests: %s\n", ap.SpecialRequests)
}
