package javascript

import (
	"github.com/blimu-dev/jscodegen/pkg/codemodel"
	"github.com/blimu-dev/jscodegen/pkg/config"
	"github.com/blimu-dev/jscodegen/pkg/ir"
	"github.com/blimu-dev/jscodegen/pkg/utils"
)

const (
	defaultProjectName        = "openapi-js-client"
	defaultProjectVersion     = "1.0.0"
	defaultProjectDescription = "JS API client generated by OpenAPI Generator"
	defaultLicenseName        = "Unlicense"
)

// projectInfo derives the project metadata. Configured values win over the
// document info block, which wins over the defaults.
func projectInfo(client config.Client, info ir.IRInfo) codemodel.Info {
	out := codemodel.Info{
		ProjectName:        client.ProjectName,
		ModuleName:         client.ModuleName,
		ProjectVersion:     client.ProjectVersion,
		ProjectDescription: client.ProjectDescription,
		LicenseName:        client.LicenseName,
	}
	if out.ProjectName == "" {
		out.ProjectName = utils.SanitizeName(utils.ToKebabCase(info.Title))
		// sanitizing turns dashes back into underscores
		out.ProjectName = utils.ToKebabCase(out.ProjectName)
	}
	if out.ProjectName == "" {
		out.ProjectName = defaultProjectName
	}
	if out.ModuleName == "" {
		out.ModuleName = utils.ToPascalCase(utils.ToSnakeCase(utils.SanitizeName(out.ProjectName)))
	}
	if out.ProjectVersion == "" {
		out.ProjectVersion = escapeVersion(info.Version)
	}
	if out.ProjectVersion == "" {
		out.ProjectVersion = defaultProjectVersion
	}
	if out.ProjectDescription == "" {
		out.ProjectDescription = info.Description
	}
	if out.ProjectDescription == "" {
		out.ProjectDescription = defaultProjectDescription
	}
	out.ProjectDescription = escapeText(out.ProjectDescription)
	if out.LicenseName == "" {
		out.LicenseName = info.License
	}
	if out.LicenseName == "" {
		out.LicenseName = defaultLicenseName
	}
	return out
}
