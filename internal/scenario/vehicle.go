package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/vds-engine/internal/dynamics"
)

// Vehicle holds the definition of the simulated vehicle.
// The physics are encapsulated by the Model field; adding a new model only
// requires implementing dynamics.Model and registering it in UnmarshalJSON
// below — no engine code changes needed.
type Vehicle struct {
	Name  string         `json:"name"`
	Model dynamics.Model `json:"-"` // set by UnmarshalJSON
}

// modelDisc is the minimum JSON structure needed to read the model discriminator.
type modelDisc struct {
	Model string `json:"model"`
}

// vehicleJSON is the raw JSON shape of a Vehicle, before the dynamics model is resolved.
type vehicleJSON struct {
	Name  string          `json:"name"`
	Model json.RawMessage `json:"dynamics"`
}

// UnmarshalJSON implements json.Unmarshaler for Vehicle.
// The "dynamics" field carries a "model" discriminator key that selects the
// concrete implementation; the rest of the dynamics object is forwarded to
// that implementation's own unmarshaler. An absent "dynamics" field selects
// the default Longitudinal parameter set.
//
// Supported models:
//   - "longitudinal": torque curve, load forces, and slip tire model.
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var aux vehicleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v.Name = aux.Name

	if len(aux.Model) == 0 {
		v.Model = dynamics.DefaultLongitudinal()
		return nil
	}

	var disc modelDisc
	if err := json.Unmarshal(aux.Model, &disc); err != nil {
		return fmt.Errorf("vehicle %q: reading dynamics model discriminator: %w", v.Name, err)
	}

	switch disc.Model {
	case dynamics.LongitudinalModelName:
		var m dynamics.Longitudinal
		if err := json.Unmarshal(aux.Model, &m); err != nil {
			return fmt.Errorf("vehicle %q: parsing longitudinal dynamics: %w", v.Name, err)
		}
		v.Model = m
	default:
		return fmt.Errorf("vehicle %q: unknown dynamics model %q", v.Name, disc.Model)
	}
	return nil
}
