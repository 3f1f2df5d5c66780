package geocoder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-flex-kit/models"
)

// LoadDefaultPredictions reads a JSON array of predictions, in the same shape
// the provider returns them, from path.
//
// Example file:
//
//	[
//	  {
//	    "id": "default-helsinki",
//	    "place_name": "Helsinki, Finland",
//	    "center": [24.94861, 60.17333],
//	    "bbox": [24.82617, 60.075361, 25.313112, 60.297839]
//	  }
//	]
func LoadDefaultPredictions(path string) ([]models.Prediction, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefaultPredictions, err)
	}

	var predictions []models.Prediction
	if err = json.Unmarshal(content, &predictions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefaultPredictions, err)
	}
	return predictions, nil
}
