package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"

	"github.com/whiteelite/solana-gateway/internal/api/models"
	"github.com/whiteelite/solana-gateway/internal/services"
)

type groupGateway struct {
	container *do.Injector
}

func (gr *groupGateway) service() (*services.ServiceGateway, error) {
	svc, err := do.Invoke[*services.ServiceGateway](gr.container)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return svc, nil
}

// Submit echoes the payload back without the envelope; this endpoint
// predates the envelope contract and keeps its original shape.
func (gr *groupGateway) Submit(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	var req models.EchoMessage
	if err := c.Bind(&req); err != nil {
		return restDecodeError(c)
	}

	return c.JSON(http.StatusOK, svc.Echo(req))
}

func (gr *groupGateway) Balance(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	res, err := svc.Balance(c.Request().Context(), c.Param("address"))
	if err != nil {
		return restError(c, err.Error())
	}
	return restOK(c, res)
}

func (gr *groupGateway) GenerateKeypair(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	return restOK(c, svc.GenerateKeypair())
}

func (gr *groupGateway) CreateToken(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	var req models.CreateTokenRequest
	if err := c.Bind(&req); err != nil {
		return restDecodeError(c)
	}

	res, err := svc.CreateToken(req)
	if err != nil {
		return restError(c, err.Error())
	}
	return restOK(c, res)
}

func (gr *groupGateway) MintToken(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	var req models.MintTokenRequest
	if err := c.Bind(&req); err != nil {
		return restDecodeError(c)
	}

	res, err := svc.MintToken(req)
	if err != nil {
		return restError(c, err.Error())
	}
	return restOK(c, res)
}

// SignMessage returns the signature base58-encoded; VerifyMessage expects
// the same encoding. Instruction payloads elsewhere stay base64.
func (gr *groupGateway) SignMessage(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	var req models.SignMessageRequest
	if err := c.Bind(&req); err != nil {
		return restDecodeError(c)
	}

	res, err := svc.SignMessage(req)
	if err != nil {
		return restError(c, err.Error())
	}
	return restOK(c, res)
}

func (gr *groupGateway) VerifyMessage(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	var req models.VerifyMessageRequest
	if err := c.Bind(&req); err != nil {
		return restDecodeError(c)
	}

	res, err := svc.VerifyMessage(req)
	if err != nil {
		return restError(c, err.Error())
	}
	return restOK(c, res)
}

func (gr *groupGateway) SendSol(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	var req models.SendSolRequest
	if err := c.Bind(&req); err != nil {
		return restDecodeError(c)
	}

	res, err := svc.SendSol(req)
	if err != nil {
		return restError(c, err.Error())
	}
	return restOK(c, res)
}

func (gr *groupGateway) SendToken(c echo.Context) error {
	svc, err := gr.service()
	if err != nil {
		return err
	}

	var req models.SendTokenRequest
	if err := c.Bind(&req); err != nil {
		return restDecodeError(c)
	}

	res, err := svc.SendToken(req)
	if err != nil {
		return restError(c, err.Error())
	}
	return restOK(c, res)
}
