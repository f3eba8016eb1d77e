package spoonacular

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// rawRecipe is the optional-field view of one upstream recipe record. Every
// field is read independently so that a missing or mistyped field only
// affects itself.
type rawRecipe struct {
	ID                   *int
	Title                *string
	Image                *string
	ReadyInMinutes       *int
	Servings             *int
	DishTypes            []string
	VeryHealthy          bool
	Cheap                bool
	Vegan                bool
	Vegetarian           bool
	SpoonacularScore     *float64
	SourceURL            *string
	ExtendedIngredients  []rawIngredient
	AnalyzedInstructions []rawInstructionGroup
	Nutrition            *rawNutrition
}

type rawIngredient struct {
	Name   *string
	Amount *float64
	Unit   *string
	Image  *string
}

type rawInstructionGroup struct {
	Steps []rawStep
}

type rawStep struct {
	Step      *string
	Equipment []string
}

type rawNutrition struct {
	Nutrients []rawNutrient
}

type rawNutrient struct {
	Name   string
	Amount *float64
}

type object map[string]json.RawMessage

func parseObject(data json.RawMessage) (object, bool) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func parseArray(data json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// parseRecipe never fails: anything it cannot read is left absent.
func parseRecipe(data json.RawMessage) rawRecipe {
	obj, ok := parseObject(data)
	if !ok {
		return rawRecipe{}
	}

	r := rawRecipe{
		ID:               obj.integer("id"),
		Title:            obj.str("title"),
		Image:            obj.str("image"),
		ReadyInMinutes:   obj.integer("readyInMinutes"),
		Servings:         obj.integer("servings"),
		DishTypes:        obj.strList("dishTypes"),
		VeryHealthy:      obj.flag("veryHealthy"),
		Cheap:            obj.flag("cheap"),
		Vegan:            obj.flag("vegan"),
		Vegetarian:       obj.flag("vegetarian"),
		SpoonacularScore: obj.num("spoonacularScore"),
		SourceURL:        obj.str("sourceUrl"),
	}

	if r.ReadyInMinutes != nil && *r.ReadyInMinutes < 0 {
		r.ReadyInMinutes = nil
	}
	if r.Servings != nil && *r.Servings <= 0 {
		r.Servings = nil
	}

	for _, item := range parseArray(obj["extendedIngredients"]) {
		ing, ok := parseObject(item)
		if !ok {
			continue
		}
		r.ExtendedIngredients = append(r.ExtendedIngredients, rawIngredient{
			Name:   ing.str("name"),
			Amount: ing.num("amount"),
			Unit:   ing.str("unit"),
			Image:  ing.str("image"),
		})
	}

	for _, item := range parseArray(obj["analyzedInstructions"]) {
		group, ok := parseObject(item)
		if !ok {
			r.AnalyzedInstructions = append(r.AnalyzedInstructions, rawInstructionGroup{})
			continue
		}
		var g rawInstructionGroup
		for _, s := range parseArray(group["steps"]) {
			step, ok := parseObject(s)
			if !ok {
				continue
			}
			rs := rawStep{Step: step.str("step")}
			for _, e := range parseArray(step["equipment"]) {
				eq, ok := parseObject(e)
				if !ok {
					continue
				}
				if name := eq.str("name"); name != nil && *name != "" {
					rs.Equipment = append(rs.Equipment, *name)
				}
			}
			g.Steps = append(g.Steps, rs)
		}
		r.AnalyzedInstructions = append(r.AnalyzedInstructions, g)
	}

	if nutrition, ok := parseObject(obj["nutrition"]); ok {
		n := &rawNutrition{}
		for _, item := range parseArray(nutrition["nutrients"]) {
			nut, ok := parseObject(item)
			if !ok {
				continue
			}
			name := nut.str("name")
			if name == nil {
				continue
			}
			n.Nutrients = append(n.Nutrients, rawNutrient{Name: *name, Amount: nut.num("amount")})
		}
		r.Nutrition = n
	}

	return r
}

// parseResultList extracts the recipe records of a list response: either a
// bare array or an object holding them under "results".
func parseResultList(data json.RawMessage) []json.RawMessage {
	if items := parseArray(data); items != nil {
		return items
	}
	if obj, ok := parseObject(data); ok {
		return parseArray(obj["results"])
	}
	return nil
}

// parseIDs returns the positive ids of the records in order.
func parseIDs(items []json.RawMessage) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		obj, ok := parseObject(item)
		if !ok {
			continue
		}
		if id := obj.integer("id"); id != nil && *id > 0 {
			ids = append(ids, *id)
		}
	}
	return ids
}

func (o object) str(key string) *string {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func (o object) num(key string) *float64 {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	// Some endpoints quote numbers.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &f
		}
	}
	return nil
}

func (o object) integer(key string) *int {
	f := o.num(key)
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	i := int(math.Round(*f))
	return &i
}

func (o object) flag(key string) bool {
	raw, ok := o[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

func (o object) strList(key string) []string {
	var out []string
	for _, item := range parseArray(o[key]) {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
