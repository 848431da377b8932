package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/funvibe/calcx/internal/evaluator"
)

const (
	ServiceName    = "calcx.v1.Calculator"
	EvaluateMethod = "/" + ServiceName + "/Evaluate"
)

// CalculatorServer is the service implementation. The request carries the
// raw source bytes, which need not be valid UTF-8; the response is an
// outcome encoded by EncodeOutcome.
type CalculatorServer interface {
	Evaluate(ctx context.Context, req *wrapperspb.BytesValue) (*structpb.Struct, error)
}

// ServiceDesc describes calcx.v1.Calculator. It is declared by hand since
// both messages are well-known types.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    evaluateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calcx/v1/calculator.proto",
}

func evaluateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Evaluate(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Calculator evaluates each request as an independent buffer.
type Calculator struct{}

func (Calculator) Evaluate(_ context.Context, req *wrapperspb.BytesValue) (*structpb.Struct, error) {
	return EncodeOutcome(evaluator.Evaluate(req.GetValue()))
}

// RegisterCalculatorServer registers impl on s.
func RegisterCalculatorServer(s grpc.ServiceRegistrar, impl CalculatorServer) {
	s.RegisterService(&ServiceDesc, impl)
}
