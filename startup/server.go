package startup

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

// ServerBuilder helps build servers with consistent error handling
type ServerBuilder struct {
	Name       string
	CreateFunc func() (ifrit.Runner, error)
}

// BuildServers builds each server and stops at the first failure.
// A builder returning a nil runner is treated as disabled and skipped.
func BuildServers(builders []ServerBuilder, logger lager.Logger) (grouper.Members, error) {
	var members grouper.Members
	for _, builder := range builders {
		server, err := builder.CreateFunc()
		if err != nil {
			logger.Error(fmt.Sprintf("failed-to-create-%s", builder.Name), err)
			return nil, err
		}
		if server == nil {
			logger.Info("server-disabled", lager.Data{"name": builder.Name})
			continue
		}
		members = append(members, grouper.Member{Name: builder.Name, Runner: server})
	}
	return members, nil
}

func Server(name string, createFunc func() (ifrit.Runner, error)) ServerBuilder {
	return ServerBuilder{
		Name:       name,
		CreateFunc: createFunc,
	}
}
