package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/liftmap/spotquery/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type queryAPI struct {
	queryService QueryService
	log          *zap.Logger
}

func New(queryService QueryService, log *zap.Logger) *queryAPI {
	return &queryAPI{
		queryService: queryService,
		log:          log,
	}
}

func (api *queryAPI) Routes(group *helper.RouteGroup) {
	group.POST("/query", api.query)
}

func (api *queryAPI) query(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request queryRequest
		err     error
	)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	resp, err := api.queryService.Query(r.Context(), request.ToCommand())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
