package epub

import (
	"encoding/xml"

	"folio/internal/services"
)

const containerPath = "META-INF/container.xml"

type ocfContainer struct {
	XMLName   xml.Name `xml:"container"`
	Rootfiles struct {
		Rootfile []struct {
			FullPath  string `xml:"full-path,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"rootfile"`
	} `xml:"rootfiles"`
}

// resolveContainer reads META-INF/container.xml and returns the OPF package
// path. This is a hard precondition for all downstream work: there is no
// recovery path when the container is missing or points nowhere.
func resolveContainer(a *Archive) (string, error) {
	if !a.Has(containerPath) {
		return "", services.Wrap(services.ErrParse, "epub", "container", "container.xml not found", nil)
	}
	data, err := a.ReadBytes(containerPath)
	if err != nil {
		return "", services.Wrap(services.ErrParse, "epub", "container", "container.xml not found", err)
	}
	var c ocfContainer
	if err := xml.Unmarshal(data, &c); err != nil {
		return "", services.Wrap(services.ErrParse, "epub", "container", "container.xml not parseable", err)
	}
	if len(c.Rootfiles.Rootfile) == 0 || c.Rootfiles.Rootfile[0].FullPath == "" {
		return "", services.Wrap(services.ErrParse, "epub", "container", "rootfile full-path missing", nil)
	}
	return normalizePath(c.Rootfiles.Rootfile[0].FullPath), nil
}
