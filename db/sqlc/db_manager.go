package sqlc

import (
	"database/sql"
	"errors"
	"net"
	"time"

	"github.com/sqlc-dev/pqtype"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

var ErrNoServerIp = errors.New("no non-loopback ipv4 interface found")

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(db *sql.DB, serverIp pqtype.Inet) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(db, serverIp),
	}
}

// ServerIpNet returns the first ipv4 address of an interface that is up and
// not a loopback, in the form stored in the inet columns.
func ServerIpNet() (pqtype.Inet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return pqtype.Inet{}, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return pqtype.Inet{}, err
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip := ipnet.IP; ip.To4() != nil && !ip.IsLoopback() {
				return pqtype.Inet{IPNet: *ipnet, Valid: true}, nil
			}
		}
	}

	return pqtype.Inet{}, ErrNoServerIp
}
