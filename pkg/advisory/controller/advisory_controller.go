package controller

import "github.com/labstack/echo/v4"

type AdvisoryController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Patch(c echo.Context) error
	Suggestions(c echo.Context) error
}
