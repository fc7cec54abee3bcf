package seed

import (
	"context"

	"sacred-journey/internal/database"
	"sacred-journey/internal/features/destination"
	"sacred-journey/internal/features/group"
	"sacred-journey/internal/features/spiritual"
	"sacred-journey/internal/features/user"
	"sacred-journey/pkg/utils"

	"go.uber.org/zap"
)

// Seeder populates an empty database with the sample accounts, group,
// destinations and devotional content the frontend expects.
type Seeder struct {
	UserRepo        user.UserRepository
	GroupRepo       group.GroupRepository
	DestinationRepo destination.DestinationRepository
	ContentRepo     spiritual.ContentRepository
	DB              *database.MongodbDB
	Logger          *zap.Logger
}

func NewSeeder(
	userRepo user.UserRepository,
	groupRepo group.GroupRepository,
	destinationRepo destination.DestinationRepository,
	contentRepo spiritual.ContentRepository,
	db *database.MongodbDB,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		UserRepo:        userRepo,
		GroupRepo:       groupRepo,
		DestinationRepo: destinationRepo,
		ContentRepo:     contentRepo,
		DB:              db,
		Logger:          logger,
	}
}

// Bootstrap seeds sample data on first boot. It is a no-op when any
// user already exists.
func (s *Seeder) Bootstrap(ctx context.Context) error {
	count, err := s.UserRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	s.Logger.Info("empty database, seeding sample data")

	if err := s.seedUsersAndGroup(ctx); err != nil {
		return err
	}
	if err := s.seedDestinations(ctx); err != nil {
		return err
	}
	if err := s.seedSpiritualContent(ctx); err != nil {
		return err
	}

	s.Logger.Info("sample data seeded")
	return nil
}

// Wipe drops every application collection. Used by the seed command's
// -force flag.
func (s *Seeder) Wipe(ctx context.Context) error {
	collections := []string{"users", "pilgrimage_groups", "itineraries", "destinations", "spiritual_content"}
	for _, name := range collections {
		if err := s.DB.DB.Collection(name).Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedUsersAndGroup(ctx context.Context) error {
	adminHash, err := utils.HashPassword("Peregrina7'7$$$%%%")
	if err != nil {
		return err
	}
	admin := &user.User{
		Email:        "julian.alcalde@axisperegrinaciones.com",
		PasswordHash: adminHash,
		Name:         "Julian Alcalde",
		Role:         user.RoleAdmin,
	}
	if err := s.UserRepo.Create(ctx, admin); err != nil {
		return err
	}

	pilgrimHash, err := utils.HashPassword("password")
	if err != nil {
		return err
	}
	pilgrims := []*user.User{
		{
			Email:        "maria@email.com",
			PasswordHash: pilgrimHash,
			Name:         "Maria Santos",
			Role:         user.RolePilgrim,
			GroupID:      "group_001",
		},
		{
			Email:        "john@email.com",
			PasswordHash: pilgrimHash,
			Name:         "John Rodriguez",
			Role:         user.RolePilgrim,
			GroupID:      "group_001",
		},
	}
	for _, p := range pilgrims {
		if err := s.UserRepo.Create(ctx, p); err != nil {
			return err
		}
	}

	// Fixed group id so the sample pilgrims' group_id resolves
	sampleGroup := &group.PilgrimageGroup{
		ID:          "group_001",
		Name:        "Holy Land Pilgrimage 2025",
		Destination: "Jerusalem & Bethlehem",
		StartDate:   "2025-03-15",
		EndDate:     "2025-03-22",
		Status:      group.StatusUpcoming,
	}
	if err := s.GroupRepo.Create(ctx, sampleGroup); err != nil {
		return err
	}

	for _, p := range pilgrims {
		info := group.PilgrimInfo{ID: p.ID, Name: p.Name, Email: p.Email}
		if err := s.GroupRepo.AddPilgrim(ctx, sampleGroup.ID, info); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedDestinations(ctx context.Context) error {
	destinations := []*destination.Destination{
		{
			Name:        "Jerusalem",
			Country:     "Israel",
			Description: "The Holy City, sacred to three major religions",
			Facts: []string{
				"Jerusalem is mentioned over 800 times in the Bible",
				"The Western Wall is the last remaining wall of the Second Temple",
				"The Via Dolorosa is traditionally believed to be the path Jesus walked to crucifixion",
				"The Old City covers just 0.35 square miles but contains sites sacred to Christianity, Judaism, and Islam",
			},
			SpiritualSignificance: "Jerusalem holds profound significance as the place of Jesus' crucifixion, burial, and resurrection. It is also the site of the Last Supper and many of Jesus' teachings.",
			ImageURL:              "https://images.unsplash.com/photo-1665338033511-e9b19abbce8a",
		},
		{
			Name:        "Bethlehem",
			Country:     "Palestine",
			Description: "The birthplace of Jesus Christ",
			Facts: []string{
				"The Church of the Nativity is one of the oldest continuously operating churches in the world",
				"The Silver Star marks the traditional spot where Jesus was born",
				"Bethlehem means 'House of Bread' in Hebrew",
				"The city is mentioned 44 times in the Bible",
			},
			SpiritualSignificance: "Bethlehem is the birthplace of Jesus Christ, making it one of the most important pilgrimage destinations for Christians worldwide.",
			ImageURL:              "https://images.unsplash.com/photo-1665338033511-e9b19abbce8a",
		},
		{
			Name:        "Fatima",
			Country:     "Portugal",
			Description: "Site of the famous Marian apparitions",
			Facts: []string{
				"The apparitions occurred to three shepherd children in 1917",
				"The Sanctuary receives over 4 million pilgrims annually",
				"The Miracle of the Sun was witnessed by approximately 70,000 people",
				"Pope Francis canonized Francisco and Jacinta Marto in 2017",
			},
			SpiritualSignificance: "Fatima is one of the most important Marian pilgrimage sites, where the Virgin Mary appeared to three children with messages of peace and conversion.",
			ImageURL:              "https://images.unsplash.com/photo-1665338033511-e9b19abbce8a",
		},
	}

	for _, d := range destinations {
		if err := s.DestinationRepo.Create(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedSpiritualContent(ctx context.Context) error {
	contents := []*spiritual.SpiritualContent{
		{
			Title:    "Santo Rosario",
			Type:     "prayer",
			Category: "rosary",
			Content: "El Santo Rosario es una oración contemplativa que nos ayuda a meditar en los misterios de la vida de Jesús y María. " +
				"Se reza con el rosario, meditando en los misterios mientras se recitan las Ave Marías.\n\n" +
				"Misterios Gozosos: la Anunciación, la Visitación, el Nacimiento de Jesús en Belén, la Presentación en el Templo, el Niño Jesús perdido y hallado en el Templo.\n" +
				"Misterios Dolorosos: la Agonía en Getsemaní, la Flagelación, la Coronación de Espinas, Jesús con la Cruz a cuestas, la Crucifixión.\n" +
				"Misterios Gloriosos: la Resurrección, la Ascensión, la Venida del Espíritu Santo, la Asunción de María, la Coronación de María.\n" +
				"Misterios Luminosos: el Bautismo en el Jordán, las Bodas de Caná, el Anuncio del Reino, la Transfiguración, la Institución de la Eucaristía.",
		},
		{
			Title:    "El Ángelus",
			Type:     "prayer",
			Category: "angelus",
			Content: "El Ángelus es una oración que conmemora la Anunciación del Ángel Gabriel a la Virgen María. " +
				"Se reza al amanecer, al mediodía y al atardecer.\n\n" +
				"V. El Ángel del Señor anunció a María.\nR. Y concibió por obra del Espíritu Santo.\n" +
				"V. He aquí la esclava del Señor.\nR. Hágase en mí según tu palabra.\n" +
				"V. Y el Verbo se hizo carne.\nR. Y habitó entre nosotros.\n\n" +
				"V. Ruega por nosotros, Santa Madre de Dios.\nR. Para que seamos dignos de alcanzar las promesas de nuestro Señor Jesucristo.",
		},
		{
			Title:    "Oración de Inicio del Día",
			Type:     "prayer",
			Category: "morning_prayer",
			Content: "Señor Dios, Padre celestial, al despertar a este nuevo día que Tú me concedes, te doy gracias por el descanso de la noche y por la vida que me das.\n\n" +
				"Te ofrezco este día: mis pensamientos, palabras y obras. Que todo lo que haga sea para tu mayor gloria y para el bien de mis hermanos.\n\n" +
				"Dame sabiduría para tomar buenas decisiones, fortaleza para enfrentar las dificultades, y caridad para amar como Tú me amas.\n\nAmén.",
		},
		{
			Title:    "Oración de Finalización del Día",
			Type:     "prayer",
			Category: "evening_prayer",
			Content: "Señor Dios, al terminar este día, vengo ante Ti con un corazón agradecido.\n\n" +
				"Te doy gracias por todas las bendiciones que he recibido: por la vida, la salud, el trabajo, la familia, los amigos y por tu constante amor y misericordia.\n\n" +
				"Te pido perdón por todas las faltas que he cometido hoy. Protege durante la noche a mi familia y a todos mis seres queridos.\n\n" +
				"En tus manos encomiendo mi alma. Amén.",
		},
		{
			Title:    "Oración del Peregrino",
			Type:     "prayer",
			Category: "pilgrim_prayer",
			Content: "Señor Jesús, como los discípulos de Emaús, camino contigo buscando tu rostro en los lugares santos donde pisaste esta tierra.\n\n" +
				"Haz que en esta peregrinación mi corazón se abra a tu palabra, mis ojos te reconozcan en el hermano que camina a mi lado, y mis pies sigan fielmente tus huellas.\n\n" +
				"Madre María, Reina de los Peregrinos, acompáñanos en este camino santo. Protégenos de todo peligro y ayúdanos a llevar a tu hijo Jesús en nuestros corazones.\n\nAmén.",
		},
	}

	for _, c := range contents {
		if err := s.ContentRepo.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
