package http

import (
	"encoding/json"

	"study-tracker/internal/catalog"
	"study-tracker/internal/dispatch"
)

type createSubjectReq struct {
	SubjectName string `json:"subject_name"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

func (r *createSubjectReq) UnmarshalJSON(data []byte) error {
	if dispatch.IsArray(data) {
		var args dispatch.Args
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		*r = createSubjectReq{
			SubjectName: args.String(0),
			Color:       args.String(1),
			Icon:        args.String(2),
		}
		return nil
	}
	type plain createSubjectReq
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = createSubjectReq(p)
	return nil
}

func (r createSubjectReq) toInput() catalog.CreateSubjectInput {
	return catalog.CreateSubjectInput{
		SubjectName: r.SubjectName,
		Color:       r.Color,
		Icon:        r.Icon,
	}
}

type createCategoryReq struct {
	CategoryName string `json:"category_name"`
	SubjectName  string `json:"subject_name"`
	Difficulty   string `json:"difficulty"`
}

func (r *createCategoryReq) UnmarshalJSON(data []byte) error {
	if dispatch.IsArray(data) {
		var args dispatch.Args
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		*r = createCategoryReq{
			CategoryName: args.String(0),
			SubjectName:  args.String(1),
			Difficulty:   args.String(2),
		}
		return nil
	}
	type plain createCategoryReq
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = createCategoryReq(p)
	return nil
}

func (r createCategoryReq) toInput() catalog.CreateCategoryInput {
	return catalog.CreateCategoryInput{
		CategoryName: r.CategoryName,
		SubjectName:  r.SubjectName,
		Difficulty:   r.Difficulty,
	}
}
