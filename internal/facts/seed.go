package facts

// defaultStore is the compiled-in table, built by init().
var defaultStore *Store

func init() {
	s, err := New(seedEntities())
	if err != nil {
		panic("facts: invalid seed table: " + err.Error())
	}
	defaultStore = s
}

// Default returns the bundled muscle table.
func Default() *Store {
	return defaultStore
}

func seedEntities() []Entity {
	return []Entity{
		{
			Name:      "Rectus Femoris",
			Origin:    "Anterior inferior iliac spine (AIIS)",
			Insertion: "Tibial tuberosity via patellar ligament",
			Action:    "Extends the knee and flexes the hip",
		},
		{
			Name:      "Vastus Lateralis",
			Origin:    "Greater trochanter and lateral lip of linea aspera",
			Insertion: "Tibial tuberosity via patellar ligament",
			Action:    "Extends the knee",
		},
		{
			Name:      "Sartorius",
			Origin:    "Anterior superior iliac spine (ASIS)",
			Insertion: "Medial surface of proximal tibia (pes anserinus)",
			Action:    "Flexes, abducts, and laterally rotates the hip; flexes the knee",
		},
		{
			Name:      "Gastrocnemius",
			Origin:    "Lateral and medial condyles of femur",
			Insertion: "Posterior surface of calcaneus via Achilles tendon",
			Action:    "Plantarflexes foot and flexes knee",
		},
		{
			Name:      "Tibialis Anterior",
			Origin:    "Lateral condyle and lateral surface of tibia",
			Insertion: "Medial cuneiform and base of first metatarsal",
			Action:    "Dorsiflexes and inverts foot",
		},
	}
}
