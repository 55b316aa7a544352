package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizsuite/loyalty/internal/domain/loyalty"
	"github.com/bizsuite/loyalty/internal/model"
	"github.com/bizsuite/loyalty/internal/service"
)

type enrollCustomer struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	InitialPoints int    `json:"initialPoints" validate:"gte=0"`
	CardColor     string `json:"cardColor"`
	TextColor     string `json:"textColor"`
}

type purchase struct {
	ID     string  `param:"id" validate:"required,uuid"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type adjustment struct {
	ID    string `param:"id" validate:"required,uuid"`
	Delta int    `json:"delta" validate:"required"`
}

type redemption struct {
	ID       string `param:"id" validate:"required,uuid"`
	RewardID string `json:"rewardId" validate:"required,uuid"`
}

// CustomerHTTPHandler is http handler for loyalty customer endpoints
type CustomerHTTPHandler struct {
	loyaltySvc service.LoyaltyService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(loyaltySvc service.LoyaltyService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{loyaltySvc: loyaltySvc}
}

// Get finds customer by id
// @Summary     Get customer
// @Description Returns single customer by its identifier
// @Tags        customers
// @Produce     json
// @Param       id  path     string true "Customer id"
// @Success     200 {object} model.Customer
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	cust, err := h.loyaltySvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if cust == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("customer with id %s doesn't exist", id))
	}
	return c.JSON(http.StatusOK, cust)
}

// GetAll returns all enrolled customers
// @Summary     Get all customers
// @Description Returns all enrolled customers
// @Tags        customers
// @Produce     json
// @Success     200 {array}  model.Customer
// @Failure     500 {object} echo.HTTPError
// @Router      /api/v1/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.loyaltySvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Post enrolls new customer to the program
// @Summary     Enroll customer
// @Description Enrolls new customer, issues loyalty card and classifies initial tier
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       enrollCustomer body     enrollCustomer true "New customer data"
// @Success     201            {object} model.Customer
// @Failure     400            {object} echo.HTTPError
// @Failure     500            {object} echo.HTTPError
// @Router      /api/v1/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var e enrollCustomer
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&e); err != nil {
		return err
	}

	cust, err := h.loyaltySvc.Enroll(c.Request().Context(), loyalty.Enrollment{
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		InitialPoints: e.InitialPoints,
		CardColor:     e.CardColor,
		TextColor:     e.TextColor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cust)
}

// Purchase accrues points for purchase
// @Summary     Accrue points for purchase
// @Description Converts purchase amount to points by the configured rate and applies them
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       id       path     string   true "Customer id"
// @Param       purchase body     purchase true "Purchase amount"
// @Success     200      {object} model.Customer
// @Failure     400      {object} echo.HTTPError
// @Failure     404      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /api/v1/customers/{id}/purchases [post]
func (h *CustomerHTTPHandler) Purchase(c echo.Context) error {
	var p purchase
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&p); err != nil {
		return err
	}

	cust, err := h.loyaltySvc.AddPointsFromPurchase(c.Request().Context(), p.ID, p.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

// Adjust applies manual points delta
// @Summary     Adjust points manually
// @Description Applies manual grant or correction debit, balance never goes negative
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       id         path     string     true "Customer id"
// @Param       adjustment body     adjustment true "Points delta"
// @Success     200        {object} model.Customer
// @Failure     400        {object} echo.HTTPError
// @Failure     404        {object} echo.HTTPError
// @Failure     422        {object} echo.HTTPError
// @Failure     500        {object} echo.HTTPError
// @Router      /api/v1/customers/{id}/points [post]
func (h *CustomerHTTPHandler) Adjust(c echo.Context) error {
	var a adjustment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&a); err != nil {
		return err
	}

	cust, err := h.loyaltySvc.AddPointsManual(c.Request().Context(), a.ID, a.Delta)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

// Redeem redeems reward for customer points
// @Summary     Redeem reward
// @Description Debits reward cost from customer balance when reward is active and balance suffices
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       id         path     string     true "Customer id"
// @Param       redemption body     redemption true "Reward to redeem"
// @Success     200        {object} model.Customer
// @Failure     400        {object} echo.HTTPError
// @Failure     404        {object} echo.HTTPError
// @Failure     422        {object} echo.HTTPError
// @Failure     500        {object} echo.HTTPError
// @Router      /api/v1/customers/{id}/redemptions [post]
func (h *CustomerHTTPHandler) Redeem(c echo.Context) error {
	var r redemption
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&r); err != nil {
		return err
	}

	cust, err := h.loyaltySvc.Redeem(c.Request().Context(), r.ID, r.RewardID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

// DeleteByID removes customer from the program
// @Summary     Delete customer
// @Description Removes customer by its identifier
// @Tags        customers
// @Param       id path string true "Customer id"
// @Success     204
// @Failure     500 {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.loyaltySvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type newReward struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	PointsRequired int    `json:"pointsRequired" validate:"required,gt=0"`
	Category       string `json:"category"`
	Image          string `json:"image"`
	Active         bool   `json:"active"`
}

type updateReward struct {
	ID string `param:"id" validate:"required,uuid"`
	newReward
}

// RewardHTTPHandler is http handler for reward catalog endpoints
type RewardHTTPHandler struct {
	rewardSvc service.RewardService
}

// NewRewardHTTPHandler builds new RewardHTTPHandler
func NewRewardHTTPHandler(rewardSvc service.RewardService) *RewardHTTPHandler {
	return &RewardHTTPHandler{rewardSvc: rewardSvc}
}

// Get finds reward by id
// @Summary     Get reward
// @Description Returns single reward by its identifier
// @Tags        rewards
// @Produce     json
// @Param       id  path     string true "Reward id"
// @Success     200 {object} model.Reward
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/v1/rewards/{id} [get]
func (h *RewardHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	reward, err := h.rewardSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if reward == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("reward with id %s doesn't exist", id))
	}
	return c.JSON(http.StatusOK, reward)
}

// GetAll returns rewards, optionally active ones only
// @Summary     Get all rewards
// @Description Returns whole reward catalog, active rewards only when activeOnly=true
// @Tags        rewards
// @Produce     json
// @Param       activeOnly query    bool false "Return active rewards only"
// @Success     200        {array}  model.Reward
// @Failure     500        {object} echo.HTTPError
// @Router      /api/v1/rewards [get]
func (h *RewardHTTPHandler) GetAll(c echo.Context) error {
	activeOnly := c.QueryParam("activeOnly") == "true"
	rewards, err := h.rewardSvc.FindAll(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rewards)
}

// Post creates new reward
// @Summary     Create reward
// @Description Adds new reward to the catalog
// @Tags        rewards
// @Accept      json
// @Produce     json
// @Param       newReward body     newReward true "New reward data"
// @Success     201       {object} model.Reward
// @Failure     400       {object} echo.HTTPError
// @Failure     500       {object} echo.HTTPError
// @Router      /api/v1/rewards [post]
func (h *RewardHTTPHandler) Post(c echo.Context) error {
	var nr newReward
	if err := c.Bind(&nr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nr); err != nil {
		return err
	}

	reward, err := h.rewardSvc.Create(c.Request().Context(), &model.Reward{
		Title:          nr.Title,
		Description:    nr.Description,
		PointsRequired: nr.PointsRequired,
		Category:       nr.Category,
		Image:          nr.Image,
		Active:         nr.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reward)
}

// Put updates existing reward
// @Summary     Update reward
// @Description Updates reward fields by its identifier
// @Tags        rewards
// @Accept      json
// @Produce     json
// @Param       id           path     string       true "Reward id"
// @Param       updateReward body     updateReward true "Reward data"
// @Success     200          {object} model.Reward
// @Failure     400          {object} echo.HTTPError
// @Failure     404          {object} echo.HTTPError
// @Failure     500          {object} echo.HTTPError
// @Router      /api/v1/rewards/{id} [put]
func (h *RewardHTTPHandler) Put(c echo.Context) error {
	var ur updateReward
	if err := c.Bind(&ur); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ur); err != nil {
		return err
	}

	reward, err := h.rewardSvc.Update(c.Request().Context(), &model.Reward{
		ID:             ur.ID,
		Title:          ur.Title,
		Description:    ur.Description,
		PointsRequired: ur.PointsRequired,
		Category:       ur.Category,
		Image:          ur.Image,
		Active:         ur.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reward)
}

// DeleteByID removes reward from the catalog
// @Summary     Delete reward
// @Description Removes reward by its identifier
// @Tags        rewards
// @Param       id path string true "Reward id"
// @Success     204
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/v1/rewards/{id} [delete]
func (h *RewardHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.rewardSvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReportHTTPHandler is http handler for program report endpoint
type ReportHTTPHandler struct {
	reportSvc service.ReportService
}

// NewReportHTTPHandler builds new ReportHTTPHandler
func NewReportHTTPHandler(reportSvc service.ReportService) *ReportHTTPHandler {
	return &ReportHTTPHandler{reportSvc: reportSvc}
}

// Get generates program report
// @Summary     Generate report
// @Description Aggregates customers, rewards and recent activity into program statistics
// @Tags        report
// @Produce     json
// @Success     200 {object} model.ProgramReport
// @Failure     500 {object} echo.HTTPError
// @Router      /api/v1/report [get]
func (h *ReportHTTPHandler) Get(c echo.Context) error {
	report, err := h.reportSvc.GenerateReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

type tierDefinition struct {
	ID          string `json:"id" validate:"required"`
	MinPoints   int    `json:"minPoints" validate:"gte=0"`
	DisplayName string `json:"displayName" validate:"required"`
	Color       string `json:"color"`
}

type updateSettings struct {
	PointsPerCurrencyUnit float64          `json:"pointsPerCurrencyUnit" validate:"required,gt=0"`
	MinimumRedeemPoints   int              `json:"minimumRedeemPoints" validate:"gte=0"`
	Tiers                 []tierDefinition `json:"tiers" validate:"required,min=1,dive"`
}

type settingsResponse struct {
	PointsPerCurrencyUnit float64        `json:"pointsPerCurrencyUnit"`
	MinimumRedeemPoints   int            `json:"minimumRedeemPoints"`
	Tiers                 []loyalty.Tier `json:"tiers"`
}

type recomputeResponse struct {
	AdjustedCustomers int `json:"adjustedCustomers"`
}

// SettingsHTTPHandler is http handler for program administration endpoints
type SettingsHTTPHandler struct {
	settingsSvc service.SettingsService
	loyaltySvc  service.LoyaltyService
}

// NewSettingsHTTPHandler builds new SettingsHTTPHandler
func NewSettingsHTTPHandler(settingsSvc service.SettingsService, loyaltySvc service.LoyaltyService) *SettingsHTTPHandler {
	return &SettingsHTTPHandler{settingsSvc: settingsSvc, loyaltySvc: loyaltySvc}
}

// Get returns current program settings snapshot
// @Summary     Get settings
// @Description Returns current conversion rate, advisory redeem floor and tier table
// @Tags        settings
// @Produce     json
// @Success     200 {object} settingsResponse
// @Router      /api/v1/settings [get]
func (h *SettingsHTTPHandler) Get(c echo.Context) error {
	snapshot := h.settingsSvc.Snapshot()
	return c.JSON(http.StatusOK, &settingsResponse{
		PointsPerCurrencyUnit: snapshot.PointsPerCurrencyUnit,
		MinimumRedeemPoints:   snapshot.MinimumRedeemPoints,
		Tiers:                 snapshot.Tiers.Tiers(),
	})
}

// Put replaces program settings and tier table
// @Summary     Update settings
// @Description Validates and swaps in new settings snapshot, levels are recomputed lazily
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       updateSettings body     updateSettings true "New settings"
// @Success     200            {object} settingsResponse
// @Failure     400            {object} echo.HTTPError
// @Failure     500            {object} echo.HTTPError
// @Router      /api/v1/settings [put]
func (h *SettingsHTTPHandler) Put(c echo.Context) error {
	var us updateSettings
	if err := c.Bind(&us); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&us); err != nil {
		return err
	}

	tiers := make([]loyalty.Tier, 0, len(us.Tiers))
	for _, t := range us.Tiers {
		tiers = append(tiers, loyalty.Tier{ID: t.ID, MinPoints: t.MinPoints, DisplayName: t.DisplayName, Color: t.Color})
	}

	snapshot, err := h.settingsSvc.Update(c.Request().Context(), model.ProgramSettings{
		PointsPerCurrencyUnit: us.PointsPerCurrencyUnit,
		MinimumRedeemPoints:   us.MinimumRedeemPoints,
	}, tiers)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &settingsResponse{
		PointsPerCurrencyUnit: snapshot.PointsPerCurrencyUnit,
		MinimumRedeemPoints:   snapshot.MinimumRedeemPoints,
		Tiers:                 snapshot.Tiers.Tiers(),
	})
}

// RecomputeLevels eagerly re-derives levels of all customers
// @Summary     Recompute levels
// @Description Re-derives every customer level against the current tier table
// @Tags        settings
// @Produce     json
// @Success     200 {object} recomputeResponse
// @Failure     500 {object} echo.HTTPError
// @Router      /api/v1/settings/recompute-levels [post]
func (h *SettingsHTTPHandler) RecomputeLevels(c echo.Context) error {
	adjusted, err := h.loyaltySvc.RecomputeLevels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &recomputeResponse{AdjustedCustomers: adjusted})
}
