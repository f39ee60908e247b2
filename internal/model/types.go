package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// CityMap is a stored city set. Width and Height are the grid a random map
// was drawn on and stay zero for coordinate maps.
type CityMap struct {
	VersionedRecord
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Width  float64      `json:"width,omitempty"`
	Height float64      `json:"height,omitempty"`
	Cities []CityRecord `json:"cities"`
}

type CityRecord struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Solution is the best tour one run found.
type Solution struct {
	VersionedRecord
	RunID      string   `json:"run_id"`
	MapID      string   `json:"map_id"`
	Crossover  string   `json:"crossover"`
	Mutation   string   `json:"mutation"`
	Seed       int64    `json:"seed"`
	CityIDs    []string `json:"city_ids"`
	Distance   float64  `json:"distance"`
	Fitness    float64  `json:"fitness"`
	Generation int      `json:"generation"`
}

// Improvement records a new run best: its tour length rounded to three
// decimals and the generation it was observed in.
type Improvement struct {
	Distance   float64 `json:"distance"`
	Generation int     `json:"generation"`
}

// GenerationDiagnostics summarizes one population before it is stepped.
type GenerationDiagnostics struct {
	Generation    int     `json:"generation"`
	BestFitness   float64 `json:"best_fitness"`
	MeanFitness   float64 `json:"mean_fitness"`
	MinFitness    float64 `json:"min_fitness"`
	FitnessStdDev float64 `json:"fitness_std_dev"`
	BestDistance  float64 `json:"best_distance"`
	MeanDistance  float64 `json:"mean_distance"`
	DistinctTours int     `json:"distinct_tours"`
}
