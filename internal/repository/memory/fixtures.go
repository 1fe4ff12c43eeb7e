package memory

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bellezapura/salon-api/internal/model"
)

// Fixture IDs are fixed so demo clients and tests can reference them.
var (
	ServiceFacialID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	ServiceBotoxID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	ServiceMassageID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	ServiceLaserID    = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	ServiceLipsID     = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	ServiceDrainageID = uuid.MustParse("66666666-6666-6666-6666-666666666666")

	ProfessionalAnaID     = uuid.MustParse("a1a1a1a1-a1a1-a1a1-a1a1-a1a1a1a1a1a1")
	ProfessionalJulianaID = uuid.MustParse("a2a2a2a2-a2a2-a2a2-a2a2-a2a2a2a2a2a2")
	ProfessionalMarianaID = uuid.MustParse("a3a3a3a3-a3a3-a3a3-a3a3-a3a3a3a3a3a3")

	UserCarlaID = uuid.MustParse("c1c1c1c1-c1c1-c1c1-c1c1-c1c1c1c1c1c1")
	UserJoaoID  = uuid.MustParse("c2c2c2c2-c2c2-c2c2-c2c2-c2c2c2c2c2c2")
	UserMariaID = uuid.MustParse("c3c3c3c3-c3c3-c3c3-c3c3-c3c3c3c3c3c3")
	UserAdminID = uuid.MustParse("ada0ada0-ada0-ada0-ada0-ada0ada0ada0")
)

// DemoPassword is accepted for every seeded account; the login flow is a
// stubbed mock, not a security model.
const DemoPassword = "bellezapura"

// Seed loads the demo catalog, roster, users, bookings and sales log.
// Booking dates are relative to the current day so the agenda always has
// something to show.
func Seed(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)

	services := []*model.Service{
		{Base: model.Base{ID: ServiceFacialID}, Name: "Limpeza de Pele Profunda", Description: "Remoção de cravos e impurezas, com hidratação e máscara calmante.", Duration: 60, Price: 180.00, ImageURL: "https://picsum.photos/seed/facial/400/300", Category: "Facial"},
		{Base: model.Base{ID: ServiceBotoxID}, Name: "Aplicação de Botox", Description: "Toxina botulínica para suavizar rugas e linhas de expressão.", Duration: 45, Price: 1200.00, ImageURL: "https://picsum.photos/seed/botox/400/300", Category: "Harmonização"},
		{Base: model.Base{ID: ServiceMassageID}, Name: "Massagem Relaxante", Description: "Técnicas de massoterapia para alívio de tensões e estresse.", Duration: 50, Price: 150.00, ImageURL: "https://picsum.photos/seed/massage/400/300", Category: "Corporal"},
		{Base: model.Base{ID: ServiceLaserID}, Name: "Depilação a Laser (Axilas)", Description: "Remoção duradoura dos pelos com tecnologia de laser de diodo.", Duration: 20, Price: 99.00, ImageURL: "https://picsum.photos/seed/laser/400/300", Category: "Depilação"},
		{Base: model.Base{ID: ServiceLipsID}, Name: "Preenchimento Labial", Description: "Aplicação de ácido hialurônico para volume e contorno dos lábios.", Duration: 60, Price: 950.00, ImageURL: "https://picsum.photos/seed/lips/400/300", Category: "Harmonização"},
		{Base: model.Base{ID: ServiceDrainageID}, Name: "Drenagem Linfática (Pacote)", Description: "Pacote com 10 sessões de massagem para reduzir retenção de líquidos e celulite.", Duration: 50, Price: 1400.00, ImageURL: "https://picsum.photos/seed/drainage/400/300", Category: "Corporal", Sessions: 10},
	}
	for i, svc := range services {
		svc.CreatedAt = now.Add(time.Duration(i) * time.Second)
		svc.UpdatedAt = svc.CreatedAt
		s.services[svc.ID] = svc
	}

	professionals := []*model.Professional{
		{Base: model.Base{ID: ProfessionalAnaID}, Name: "Dr. Ana Costa", Specialty: "Dermatologia Estética", AvatarURL: "https://picsum.photos/seed/ana/100/100"},
		{Base: model.Base{ID: ProfessionalJulianaID}, Name: "Juliana Lima", Specialty: "Esteticista Facial", AvatarURL: "https://picsum.photos/seed/juliana/100/100"},
		{Base: model.Base{ID: ProfessionalMarianaID}, Name: "Mariana Alves", Specialty: "Massoterapeuta", AvatarURL: "https://picsum.photos/seed/mariana/100/100"},
	}
	for i, p := range professionals {
		p.CreatedAt = now.Add(time.Duration(i) * time.Second)
		p.UpdatedAt = p.CreatedAt
		s.professionals[p.ID] = p
	}

	users := []*model.User{
		{Base: model.Base{ID: UserCarlaID}, Name: "Carla Mendes", Email: "carla.mendes@example.com", Phone: "(11) 98765-4321", CPF: "123.456.789-00", Role: model.RoleClient, Credits: map[uuid.UUID]int{ServiceMassageID: 5}},
		{Base: model.Base{ID: UserAdminID}, Name: "Sofia Gerente", Email: "admin@bellezapura.com", Phone: "(11) 91234-5678", CPF: "987.654.321-99", Role: model.RoleAdmin},
		{Base: model.Base{ID: UserJoaoID}, Name: "João Silva", Email: "joao.silva@example.com", Phone: "(21) 99999-8888", CPF: "234.567.890-11", Role: model.RoleClient},
		{Base: model.Base{ID: UserMariaID}, Name: "Maria Oliveira", Email: "maria.oliveira@example.com", Phone: "(31) 98888-7777", CPF: "345.678.901-22", Role: model.RoleClient},
	}
	for i, u := range users {
		u.PasswordHash = string(hash)
		u.CreatedAt = now.Add(time.Duration(i) * time.Second)
		u.UpdatedAt = u.CreatedAt
		s.users[u.ID] = u
	}

	at := func(d time.Time, hour, minute int) time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
	}
	today := now
	tomorrow := now.AddDate(0, 0, 1)
	yesterday := now.AddDate(0, 0, -1)

	bookings := []*model.Booking{
		{UserID: UserCarlaID, ServiceID: ServiceFacialID, ProfessionalID: ProfessionalJulianaID, Date: at(now.AddDate(0, 0, 5), 10, 0), Status: model.BookingStatusConfirmed},
		{UserID: UserCarlaID, ServiceID: ServiceMassageID, ProfessionalID: ProfessionalMarianaID, Date: at(now.AddDate(0, 0, -10), 15, 0), Status: model.BookingStatusCompleted, Rating: 5, Comment: "Adorei a massagem, muito relaxante!"},
		{UserID: UserCarlaID, ServiceID: ServiceLaserID, ProfessionalID: ProfessionalAnaID, Date: at(now.AddDate(0, 0, -30), 11, 0), Status: model.BookingStatusCompleted, Rating: 4, Comment: "Resultado ótimo, recomendo."},
		{UserID: UserJoaoID, ServiceID: ServiceFacialID, ProfessionalID: ProfessionalJulianaID, Date: at(today, 9, 0), Status: model.BookingStatusConfirmed},
		{UserID: UserMariaID, ServiceID: ServiceBotoxID, ProfessionalID: ProfessionalAnaID, Date: at(today, 11, 30), Status: model.BookingStatusConfirmed},
		{UserID: UserCarlaID, ServiceID: ServiceLipsID, ProfessionalID: ProfessionalAnaID, Date: at(tomorrow, 14, 0), Status: model.BookingStatusConfirmed},
		{UserID: UserJoaoID, ServiceID: ServiceDrainageID, ProfessionalID: ProfessionalMarianaID, Date: at(yesterday, 16, 0), Status: model.BookingStatusCompleted},
		{UserID: UserMariaID, ServiceID: ServiceLaserID, ProfessionalID: ProfessionalJulianaID, Date: at(yesterday, 10, 0), Status: model.BookingStatusCanceled},
		{UserID: UserJoaoID, ServiceID: ServiceMassageID, ProfessionalID: ProfessionalMarianaID, Date: at(now.AddDate(0, 0, 3), 13, 0), Status: model.BookingStatusConfirmed},
	}
	for i, b := range bookings {
		b.ID = uuid.New()
		b.CreatedAt = now.Add(time.Duration(i) * time.Second)
		b.UpdatedAt = b.CreatedAt
		s.bookings[b.ID] = b
	}

	sales := []*model.Sale{
		{ServiceName: "Aplicação de Botox", ClientName: "Fernanda Lima", Amount: 1200.00, Date: now.AddDate(0, -3, 0)},
		{ServiceName: "Limpeza de Pele Profunda", ClientName: "Carla Mendes", Amount: 180.00, Date: now.AddDate(0, 0, -10)},
		{ServiceName: "Massagem Relaxante", ClientName: "João Silva", Amount: 150.00, Date: now.AddDate(0, 0, -8)},
		{ServiceName: "Aplicação de Botox", ClientName: "Maria Oliveira", Amount: 1200.00, Date: now.AddDate(0, 0, -5)},
		{ServiceName: "Depilação a Laser (Axilas)", ClientName: "Carla Mendes", Amount: 99.00, Date: now.AddDate(0, 0, -2)},
		{ServiceName: "Preenchimento Labial", ClientName: "Ana Paula", Amount: 950.00, Date: now.AddDate(0, 0, -1)},
		{ServiceName: "Drenagem Linfática (Pacote)", ClientName: "Beatriz Costa", Amount: 1400.00, Date: now.AddDate(0, 0, -1)},
		{ServiceName: "Limpeza de Pele Profunda", ClientName: "João Silva", Amount: 180.00, Date: now},
		{ServiceName: "Massagem Relaxante", ClientName: "Maria Oliveira", Amount: 150.00, Date: now},
	}
	for i, sale := range sales {
		sale.ID = uuid.New()
		sale.CreatedAt = now.Add(time.Duration(i) * time.Second)
		sale.UpdatedAt = sale.CreatedAt
		s.sales = append(s.sales, sale)
	}
}
