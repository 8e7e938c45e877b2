package appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/api"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/forms"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
	"github.com/thenoetrevino/plantel/internal/types"
)

// DefaultDuration is the length of an appointment in minutes
const DefaultDuration = 45

var requiredBookFlags = []string{"athlete", "room", "responsible", "area", "at"}

// BookCmd returns the appointment book subcommand
func BookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		Long: `Book an appointment for an athlete in a consulting room.
The backend rejects bookings that overlap another appointment in the same room.

Examples:
  plantel appointment book --athlete=3 --room=5 --responsible=7 \
    --area=Nutrición --at="2026-03-02 10:00"

  # Pick athlete, room and responsible from lists; flags prefill the form
  plantel appointment book --interactive --area=Nutrición

  # Quiet mode for bash capture
  APPT=$(plantel appointment book --athlete=3 --room=5 --responsible=7 \
    --area=Fisioterapia --at="2026-03-02 11:00" --duration=30 --quiet)
`,
		RunE: runBook,
	}

	cmd.Flags().Int("athlete", 0, "Athlete ID (required)")
	cmd.Flags().Int("room", 0, "Consulting room ID (required)")
	cmd.Flags().Int("responsible", 0, "Responsible professional ID (required)")
	cmd.Flags().String("area", "", "Clinical area (required)")
	cmd.Flags().String("at", "", "Start as YYYY-MM-DD HH:MM or RFC 3339 (required)")
	cmd.Flags().Int("duration", DefaultDuration, "Duration in minutes")
	cmd.Flags().String("notes", "", "Free text notes")
	cmd.Flags().BoolP("interactive", "i", false, "Fill the booking in a form, checking each field as it is entered")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runBook(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	interactive, _ := cmd.Flags().GetBool("interactive")

	if interactive && (formatter.JSON || formatter.Quiet) {
		return formatter.Fail(&cli.ExitError{
			Code: cli.ExitUsage,
			Err:  errors.New("--interactive cannot be combined with --json or --quiet"),
		})
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	var req api.BookingRequest
	if interactive {
		req, err = askBooking(ctx, cliInstance, bookingFromFlags(cmd))
	} else {
		req, err = bookingRequestFromFlags(cmd)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	appt, err := cliInstance.Client.BookAppointment(ctx, req)
	if err != nil {
		if api.IsConflict(err) {
			return formatter.FailWithSuggestion(err, "The room is taken at that time; pick another slot or room")
		}
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(appt)
	}

	formatter.Printf("Booked appointment %d %s\n", appt.ID, styles.RenderStatusChip(appt.Status))
	formatter.Printf("  %s\n", styles.RenderField("When", appt.StartsAt.Local().Format("Mon 2 Jan 2006 15:04")+" - "+appt.EndsAt().Local().Format("15:04")))
	formatter.Printf("  %s\n", styles.RenderField("Area", appt.Area))
	return nil
}

func bookingRequestFromFlags(cmd *cobra.Command) (api.BookingRequest, error) {
	var missing []string
	for _, name := range requiredBookFlags {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, strconv.Quote(name))
		}
	}
	if len(missing) > 0 {
		return api.BookingRequest{}, &cli.ExitError{
			Code: cli.ExitUsage,
			Err:  fmt.Errorf("required flag(s) %s not set (or use --interactive)", strings.Join(missing, ", ")),
		}
	}

	athleteID, _ := cmd.Flags().GetInt("athlete")
	roomID, _ := cmd.Flags().GetInt("room")
	responsibleID, _ := cmd.Flags().GetInt("responsible")
	area, _ := cmd.Flags().GetString("area")
	at, _ := cmd.Flags().GetString("at")
	duration, _ := cmd.Flags().GetInt("duration")
	notes, _ := cmd.Flags().GetString("notes")

	startsAt, err := cli.ParseDateTime(at)
	if err != nil {
		return api.BookingRequest{}, &cli.ExitError{Code: cli.ExitUsage, Err: err}
	}

	return api.BookingRequest{
		AthleteID:        types.AthleteIDFromInt(athleteID),
		ConsultingRoomID: types.CatalogIDFromInt(roomID),
		ResponsibleID:    types.CatalogIDFromInt(responsibleID),
		Area:             area,
		StartsAt:         startsAt,
		DurationMinutes:  duration,
		Notes:            notes,
	}, nil
}

func bookingFromFlags(cmd *cobra.Command) forms.Booking {
	athleteID, _ := cmd.Flags().GetInt("athlete")
	roomID, _ := cmd.Flags().GetInt("room")
	responsibleID, _ := cmd.Flags().GetInt("responsible")
	area, _ := cmd.Flags().GetString("area")
	at, _ := cmd.Flags().GetString("at")
	duration, _ := cmd.Flags().GetInt("duration")
	notes, _ := cmd.Flags().GetString("notes")

	return forms.Booking{
		AthleteID:     athleteID,
		RoomID:        roomID,
		ResponsibleID: responsibleID,
		Area:          area,
		At:            at,
		Duration:      strconv.Itoa(duration),
		Notes:         notes,
	}
}

// askBooking shows the booking form with athletes, rooms and responsibles
// loaded from the backend
func askBooking(ctx context.Context, c *cli.CLI, booking forms.Booking) (api.BookingRequest, error) {
	athletes, err := c.Client.ListAthletes(ctx)
	if err != nil {
		return api.BookingRequest{}, err
	}
	rooms, err := forms.ChoicesOf(ctx, c.Client.ConsultingRooms())
	if err != nil {
		return api.BookingRequest{}, err
	}
	responsibles, err := forms.ChoicesOf(ctx, c.Client.Responsibles())
	if err != nil {
		return api.BookingRequest{}, err
	}

	form := forms.BookingForm(&booking, forms.AthleteChoices(athletes), rooms, responsibles,
		forms.Theme(c.Config.ColorScheme))
	if err := forms.Run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return api.BookingRequest{}, &cli.ExitError{Code: cli.ExitFailure, Err: errors.New("booking cancelled")}
		}
		return api.BookingRequest{}, err
	}
	return booking.Request()
}
