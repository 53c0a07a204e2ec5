package utils

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/regions"
	ses "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/ses/v20201002"
	"go.uber.org/zap"

	"lostfound_backend/config"
)

// SendTemplateEmail delivers a single templated mail through tencent ses.
// When no credentials are configured the call is a no-op, so deployments
// without a mail account keep the side-effect-free behavior.
func SendTemplateEmail(receiver, subject string, templateData string) error {
	if config.Config.TencentSecretID == "" {
		Logger.Info("email sending skipped, no credentials", zap.String("receiver", receiver))
		return nil
	}

	credential := common.NewCredential(
		config.Config.TencentSecretID,
		config.Config.TencentSecretKey,
	)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "ses.tencentcloudapi.com"
	client, err := ses.NewClient(credential, regions.HongKong, cpf)
	if err != nil {
		return errors.Wrap(err, "create ses client")
	}

	request := ses.NewSendEmailRequest()
	request.FromEmailAddress = common.StringPtr(config.Config.EmailFrom)
	request.Destination = common.StringPtrs([]string{receiver})
	request.Template = &ses.Template{
		TemplateID:   common.Uint64Ptr(config.Config.TencentTemplateID),
		TemplateData: common.StringPtr(templateData),
	}
	request.Subject = common.StringPtr(subject)
	request.TriggerType = common.Uint64Ptr(1)

	resp, err := client.SendEmail(request)
	if err != nil {
		return errors.Wrap(err, "send email")
	}
	Logger.Info("SendEmailResponse", zap.String("Response", resp.ToJsonString()))
	return nil
}

func SendInviteCodeEmail(code, receiver string) error {
	return SendTemplateEmail(receiver, "[Lost & Found] Invitation Code",
		fmt.Sprintf("{\"code\": \"%s\"}", code))
}

func SendPasswordResetEmail(token, receiver string) error {
	return SendTemplateEmail(receiver, "[Lost & Found] Password Reset",
		fmt.Sprintf("{\"token\": \"%s\"}", token))
}
