// Package ddc performs DDC/CI exchanges with a display over an abstract
// byte transport.
//
// An Exchanger builds request frames with package packet, writes them,
// pauses for the display, reads and parses the reply, and retries on
// failure. Every attempt's status feeds the worker's adaptive sleep
// estimator and the process-wide status counters. Exhausted retries are
// reported as an *errinfo.ErrorInfo whose causes are the per-attempt
// codes; single failures are reported as a *status.Error. Both work with
// errors.Is against status.Err values.
//
// Opening a device is the transport's business. A Linux I2C transport
// only needs to set the slave address 0x37 and pass the bytes through:
//
//	x, err := ddc.New(i2cTransport, ddc.Config{Worker: "i2c-4"})
//	reply, err := x.GetVCP(ctx, 0x10)
//	fmt.Println(reply.CurValue(), reply.MaxValue())
package ddc
