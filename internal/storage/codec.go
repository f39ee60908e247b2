package storage

import (
	"encoding/json"
	"errors"
	"sort"

	"tspevo/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// CurrentVersion is the version stamp new records are written with.
func CurrentVersion() model.VersionedRecord {
	return model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion}
}

// stampVersion fills in the current version on records written without one.
// Records carrying an explicit older version keep it so reads reject them.
func stampVersion(v model.VersionedRecord) model.VersionedRecord {
	if v == (model.VersionedRecord{}) {
		return CurrentVersion()
	}
	return v
}

func EncodeCityMap(m model.CityMap) ([]byte, error) {
	return json.Marshal(m)
}

func DecodeCityMap(data []byte) (model.CityMap, error) {
	var cityMap model.CityMap
	if err := json.Unmarshal(data, &cityMap); err != nil {
		return model.CityMap{}, err
	}
	if err := checkVersion(cityMap.VersionedRecord); err != nil {
		return model.CityMap{}, err
	}
	return cityMap, nil
}

func EncodeSolution(s model.Solution) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeSolution(data []byte) (model.Solution, error) {
	var solution model.Solution
	if err := json.Unmarshal(data, &solution); err != nil {
		return model.Solution{}, err
	}
	if err := checkVersion(solution.VersionedRecord); err != nil {
		return model.Solution{}, err
	}
	return solution, nil
}

func EncodeFitnessHistory(history []float64) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeFitnessHistory(data []byte) ([]float64, error) {
	var history []float64
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func EncodeGenerationDiagnostics(diagnostics []model.GenerationDiagnostics) ([]byte, error) {
	return json.Marshal(diagnostics)
}

func DecodeGenerationDiagnostics(data []byte) ([]model.GenerationDiagnostics, error) {
	var diagnostics []model.GenerationDiagnostics
	if err := json.Unmarshal(data, &diagnostics); err != nil {
		return nil, err
	}
	return diagnostics, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}

func sortSolutions(solutions []model.Solution) {
	sort.SliceStable(solutions, func(i, j int) bool {
		if solutions[i].Distance != solutions[j].Distance {
			return solutions[i].Distance < solutions[j].Distance
		}
		return solutions[i].RunID < solutions[j].RunID
	})
}
