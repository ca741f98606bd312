package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
)

type Notifier interface {
	NotifyBookingCreated(user models.User, booking models.Booking, destination models.Destination) error
	NotifyBookingStatus(booking models.Booking, previous models.BookingStatus) error
}

// DiscordNotifier announces booking lifecycle events in a channel so
// operators can watch reservations come in without tailing logs.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if channelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}

	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}

	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}, nil
}

func (n *DiscordNotifier) NotifyBookingCreated(user models.User, booking models.Booking, destination models.Destination) error {
	message := fmt.Sprintf("🚀 **New Booking** `%s`\n**Traveler:** %s\n**Destination:** %s\n**Dates:** %s - %s\n**Party:** %d\n**Total:** $%d",
		booking.Reference,
		user.Username,
		destination.Name,
		booking.DepartureDate.Format("2006-01-02"),
		booking.ReturnDate.Format("2006-01-02"),
		booking.Travelers,
		booking.TotalPrice,
	)

	if _, err := n.session.ChannelMessageSend(n.channelID, message); err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

func (n *DiscordNotifier) NotifyBookingStatus(booking models.Booking, previous models.BookingStatus) error {
	emoji := "📋"
	switch booking.Status {
	case models.BookingConfirmed:
		emoji = "✅"
	case models.BookingCancelled:
		emoji = "😢 👎"
	}

	message := fmt.Sprintf("%s **Booking Update** `%s`\n**Status:** %s → %s",
		emoji,
		booking.Reference,
		previous,
		booking.Status,
	)

	if _, err := n.session.ChannelMessageSend(n.channelID, message); err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
