package model

// ReminderSettings holds the admin-configured appointment reminder policy.
// Timings are hours before the appointment at which a reminder fires.
type ReminderSettings struct {
	Enabled  bool             `json:"enabled"`
	Timings  []int            `json:"timings"`
	Channels ReminderChannels `json:"channels"`
	Template string           `json:"template"`
}

type ReminderChannels struct {
	Email    bool `json:"email"`
	WhatsApp bool `json:"whatsapp"`
}

// DefaultReminderSettings mirrors the seeded back-office defaults.
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		Enabled: true,
		Timings: []int{24, 1},
		Channels: ReminderChannels{
			Email: true,
		},
		Template: "Olá {clientName},\n" +
			"Este é um lembrete do seu agendamento na BellezaPura.\n\n" +
			"Serviço: {serviceName}\n" +
			"Profissional: {professionalName}\n" +
			"Data: {date} às {time}\n\n" +
			"Mal podemos esperar para vê-lo(a)!\n" +
			"Equipe BellezaPura",
	}
}

type UpdateReminderSettingsRequest struct {
	Enabled  bool             `json:"enabled"`
	Timings  []int            `json:"timings" binding:"dive,oneof=24 12 3 1"`
	Channels ReminderChannels `json:"channels"`
	Template string           `json:"template"`
}
